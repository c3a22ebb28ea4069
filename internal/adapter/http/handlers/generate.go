package handlers

//go:generate mockgen -source=../../../usecase/bulk_packing_slip_usecase.go -destination=mocks/bulk_packing_slip_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/single_order_usecase.go -destination=mocks/single_order_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/event_logger.go -destination=mocks/event_logger_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/metrics_usecase.go -destination=mocks/metrics_usecase_mock.go -package=mocks
