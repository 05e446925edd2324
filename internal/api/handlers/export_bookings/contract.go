package export_bookings

import "context"

type BookingService interface {
	ExportCSV(ctx context.Context) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
