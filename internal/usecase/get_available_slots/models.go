package get_available_slots

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Request модель запроса на получение слотов.
// Параметров нет - возвращается весь текущий горизонт.
type Request struct{}

// Response модель ответа с полной сеткой слотов горизонта
type Response struct {
	Slots []Slot // Все слоты горизонта по возрастанию (дата, время)
}

// Slot модель временного слота с вычисленной доступностью
type Slot struct {
	ID        string           // ID слота "{date}-{time}"
	Date      string           // Дата (YYYY-MM-DD)
	StartTime types.TimeString // Время начала
	Available bool             // Эффективная доступность на момент запроса
}
