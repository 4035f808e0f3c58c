package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	RegisterSuccess   = "user registered successfully"
	LoginSuccess      = "login successful"
	LogoutSuccess     = "successfully logout"
	GetProfileSuccess = "get profile successfully"

	// Patient messages
	GetPatientSuccess        = "patient retrieved successfully"
	UpdatePatientSuccess     = "patient updated successfully"
	GetHealthRecordsSuccess  = "health records retrieved successfully"
	AddHealthRecordSuccess   = "health record added successfully"
	GetNutritionPlansSuccess = "nutrition plans retrieved successfully"
	AddNutritionPlanSuccess  = "nutrition plan added successfully"

	// Chatbot messages
	ChatResponseSuccess     = "chat response generated successfully"
	GetChatHistorySuccess   = "chat history retrieved successfully"
	ClearChatHistorySuccess = "chat history cleared successfully"

	// Report messages
	GenerateReportSuccess    = "patient report generated successfully"
	GetPatientSummarySuccess = "patient summary retrieved successfully"
)
