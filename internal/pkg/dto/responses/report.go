package responses

import "nutripulse-service/internal/app/models"

type ReportPatientInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medical_history"`
	NutritionNeeds string `json:"nutrition_needs"`
}

type ReportPeriod struct {
	HealthRecordsPeriod    string `json:"health_records_period"`
	NutritionPlansPeriod   string `json:"nutrition_plans_period"`
	ChatInteractionsPeriod string `json:"chat_interactions_period"`
}

type ReportStatistics struct {
	TotalHealthRecords    int `json:"total_health_records"`
	TotalNutritionPlans   int `json:"total_nutrition_plans"`
	TotalChatInteractions int `json:"total_chat_interactions"`
	HealthRelatedChats    int `json:"health_related_chats"`
	NutritionRelatedChats int `json:"nutrition_related_chats"`
}

type ChatSummary struct {
	TotalMessages    int    `json:"total_messages"`
	HealthQueries    int    `json:"health_queries"`
	NutritionQueries int    `json:"nutrition_queries"`
	EngagementLevel  string `json:"engagement_level"`
}

type Recommendations struct {
	HealthMonitoring  string `json:"health_monitoring"`
	NutritionFollowUp string `json:"nutrition_follow_up"`
	Engagement        string `json:"engagement"`
}

type SDGZeroHunger struct {
	NutritionPlansProvided    bool   `json:"nutrition_plans_provided"`
	NutritionAwarenessQueries int    `json:"nutrition_awareness_queries"`
	Status                    string `json:"status"`
}

type SDGGoodHealth struct {
	HealthRecordsMaintained  bool   `json:"health_records_maintained"`
	HealthAwarenessQueries   int    `json:"health_awareness_queries"`
	PreventiveCareEngagement bool   `json:"preventive_care_engagement"`
	Status                   string `json:"status"`
}

type SDGAlignment struct {
	SDG2ZeroHunger SDGZeroHunger `json:"sdg_2_zero_hunger"`
	SDG3GoodHealth SDGGoodHealth `json:"sdg_3_good_health"`
}

type PatientReport struct {
	PatientInfo          ReportPatientInfo      `json:"patient_info"`
	ReportGeneratedAt    string                 `json:"report_generated_at"`
	ReportPeriod         ReportPeriod           `json:"report_period"`
	Statistics           ReportStatistics       `json:"statistics"`
	LatestHealthRecord   *models.HealthRecord   `json:"latest_health_record"`
	LatestNutritionPlan  *models.NutritionPlan  `json:"latest_nutrition_plan"`
	RecentHealthRecords  []models.HealthRecord  `json:"recent_health_records"`
	RecentNutritionPlans []models.NutritionPlan `json:"recent_nutrition_plans"`
	RecentChatSummary    ChatSummary            `json:"recent_chat_summary"`
	Recommendations      Recommendations        `json:"recommendations"`
	SDGAlignment         SDGAlignment           `json:"sdg_alignment"`
}

type SummaryRecentActivity struct {
	ChatInteractionsThisWeek int    `json:"chat_interactions_this_week"`
	EngagementStatus         string `json:"engagement_status"`
}

type PatientSummary struct {
	PatientName       string                `json:"patient_name"`
	Age               int                   `json:"age"`
	Gender            string                `json:"gender"`
	LastHealthCheckup *string               `json:"last_health_checkup"`
	LastNutritionPlan *string               `json:"last_nutrition_plan"`
	RecentActivity    SummaryRecentActivity `json:"recent_activity"`
	HealthStatus      string                `json:"health_status"`
	NutritionStatus   string                `json:"nutrition_status"`
}
