package routers

import (
	"nutripulse-service/internal/app/delivery/http/middlewares"
	"nutripulse-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(middlewares.Authenticate).Get("/{patientID}", patientController.GetPatient)
	router.With(middlewares.Authenticate).Put("/{patientID}", patientController.UpdatePatient)
	router.With(middlewares.Authenticate).Get("/{patientID}/records", patientController.GetHealthRecords)
	router.With(middlewares.Authenticate).Post("/{patientID}/records", patientController.AddHealthRecord)
	router.With(middlewares.Authenticate).Get("/{patientID}/nutrition", patientController.GetNutritionPlans)
	router.With(middlewares.Authenticate).Post("/{patientID}/nutrition", patientController.AddNutritionPlan)
}
