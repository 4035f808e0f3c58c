package routers

import (
	"nutripulse-service/internal/app/delivery/http/middlewares"
	"nutripulse-service/internal/app/services/reports"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.With(middlewares.Authenticate).Get("/{patientID}", reportController.GenerateReport)
	router.With(middlewares.Authenticate).Get("/{patientID}/summary", reportController.GetSummary)
}
