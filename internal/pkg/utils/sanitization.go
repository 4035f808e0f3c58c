package utils

import (
	"nutripulse-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Hospital = strings.TrimSpace(input.Hospital)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeChatMessageRequest(input *requests.ChatMessage) {
	input.Message = strings.TrimSpace(input.Message)
}

func SanitizeCreateHealthRecordRequest(input *requests.CreateHealthRecord) {
	input.CheckupNotes = strings.TrimSpace(input.CheckupNotes)
	input.Prescriptions = strings.TrimSpace(input.Prescriptions)
}

func SanitizeCreateNutritionPlanRequest(input *requests.CreateNutritionPlan) {
	input.DietPlan = strings.TrimSpace(input.DietPlan)
}
