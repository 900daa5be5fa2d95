package extmocks

//go:generate mockgen -destination=writer_mock.go -package=extmocks -mock_names Writer=WriterMock io Writer
//go:generate mockgen -destination=logger_mock.go -package=extmocks -mock_names Logger=LoggerMock github.com/sirkon/zmeika/internal/logging Logger
