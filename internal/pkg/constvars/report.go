package constvars

// Lookback windows used when aggregating a patient report.
const (
	ReportRecordWindowDays  = 180
	ReportChatWindowDays    = 30
	SummaryChatWindowDays   = 7
	ReportRecentEntriesSize = 5
)

// Keyword sets for classifying user-authored chat messages. Matching is
// case-insensitive substring membership; a message may count toward both.
var (
	ReportHealthKeywords    = []string{"health", "symptom", "pain", "medicine", "treatment", "doctor"}
	ReportNutritionKeywords = []string{"diet", "food", "nutrition", "vitamin", "meal", "eating"}
)

const (
	EngagementLevelHigh   = "High"
	EngagementLevelMedium = "Medium"
	EngagementLevelLow    = "Low"

	SDGStatusActive         = "Active"
	SDGStatusNeedsAttention = "Needs attention"

	EngagementStatusActive   = "Active"
	EngagementStatusInactive = "Inactive"

	HealthStatusUnderCare  = "Under care"
	HealthStatusNoRecords  = "No recent records"
	NutritionStatusHasPlan = "Has plan"
	NutritionStatusNoPlan  = "No nutrition plan"

	RecommendationKeepCheckups      = "Continue regular health checkups"
	RecommendationInitialAssessment = "Schedule initial health assessment"
	RecommendationMonitorAdherence  = "Monitor nutrition plan adherence"
	RecommendationInitialPlan       = "Develop initial nutrition plan"
	RecommendationGoodEngagement    = "Patient shows good engagement with health system"
	RecommendationEncourageChatbot  = "Encourage patient to use chatbot for health queries"

	ReportPeriodSixMonths  = "Last 6 months"
	ReportPeriodThirtyDays = "Last 30 days"
)
