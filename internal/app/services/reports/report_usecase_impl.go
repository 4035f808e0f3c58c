package reports

import (
	"context"
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/app/services/chatbot"
	"nutripulse-service/internal/app/services/nutritionplans"
	"nutripulse-service/internal/app/services/patients"
	"nutripulse-service/internal/app/services/records"
	"nutripulse-service/internal/app/services/shared/access"
	"nutripulse-service/internal/app/services/users"
	"nutripulse-service/internal/pkg/constvars"
	"nutripulse-service/internal/pkg/dto/responses"
	"nutripulse-service/internal/pkg/exceptions"
	"strings"
	"time"

	"go.uber.org/zap"
)

type reportUsecase struct {
	Log                     *zap.Logger
	UserRepository          users.UserRepository
	PatientRepository       patients.PatientRepository
	HealthRecordRepository  records.HealthRecordRepository
	NutritionPlanRepository nutritionplans.NutritionPlanRepository
	ChatRepository          chatbot.ChatRepository
}

func NewReportUsecase(
	logger *zap.Logger,
	userRepository users.UserRepository,
	patientRepository patients.PatientRepository,
	healthRecordRepository records.HealthRecordRepository,
	nutritionPlanRepository nutritionplans.NutritionPlanRepository,
	chatRepository chatbot.ChatRepository,
) ReportUsecase {
	return &reportUsecase{
		Log:                     logger,
		UserRepository:          userRepository,
		PatientRepository:       patientRepository,
		HealthRecordRepository:  healthRecordRepository,
		NutritionPlanRepository: nutritionPlanRepository,
		ChatRepository:          chatRepository,
	}
}

func (uc *reportUsecase) GenerateReport(ctx context.Context, session *models.Session, patientID string, now time.Time) (*responses.PatientReport, error) {
	if err := access.Authorize(session, patientID, access.CapabilityReadOwnOrAny); err != nil {
		return nil, err
	}

	patient, patientUser, err := uc.resolvePatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	recordsSince := now.AddDate(0, 0, -constvars.ReportRecordWindowDays)
	chatsSince := now.AddDate(0, 0, -constvars.ReportChatWindowDays)

	healthRecords, err := uc.HealthRecordRepository.FindByPatientIDSince(ctx, patientID, recordsSince)
	if err != nil {
		return nil, err
	}
	nutritionPlans, err := uc.NutritionPlanRepository.FindByPatientIDSince(ctx, patientID, recordsSince)
	if err != nil {
		return nil, err
	}
	chatTurns, err := uc.ChatRepository.FindByUserIDSince(ctx, patient.UserID, chatsSince)
	if err != nil {
		return nil, err
	}

	healthQueries, nutritionQueries := classifyChatTurns(chatTurns)
	totalChats := len(chatTurns)

	report := &responses.PatientReport{
		PatientInfo: responses.ReportPatientInfo{
			ID:             patient.ID,
			Name:           patientUser.Name,
			Age:            patient.Age,
			Gender:         patient.Gender,
			MedicalHistory: patient.MedicalHistory,
			NutritionNeeds: patient.NutritionNeeds,
		},
		ReportGeneratedAt: now.Format(time.RFC3339),
		ReportPeriod: responses.ReportPeriod{
			HealthRecordsPeriod:    constvars.ReportPeriodSixMonths,
			NutritionPlansPeriod:   constvars.ReportPeriodSixMonths,
			ChatInteractionsPeriod: constvars.ReportPeriodThirtyDays,
		},
		Statistics: responses.ReportStatistics{
			TotalHealthRecords:    len(healthRecords),
			TotalNutritionPlans:   len(nutritionPlans),
			TotalChatInteractions: totalChats,
			HealthRelatedChats:    healthQueries,
			NutritionRelatedChats: nutritionQueries,
		},
		RecentHealthRecords:  headRecords(healthRecords, constvars.ReportRecentEntriesSize),
		RecentNutritionPlans: headPlans(nutritionPlans, constvars.ReportRecentEntriesSize),
		RecentChatSummary: responses.ChatSummary{
			TotalMessages:    totalChats,
			HealthQueries:    healthQueries,
			NutritionQueries: nutritionQueries,
			EngagementLevel:  engagementLevel(totalChats),
		},
		Recommendations: buildRecommendations(len(healthRecords), len(nutritionPlans), totalChats),
		SDGAlignment:    buildSDGAlignment(len(healthRecords), len(nutritionPlans), healthQueries, nutritionQueries, totalChats),
	}

	if len(healthRecords) > 0 {
		report.LatestHealthRecord = &healthRecords[0]
	}
	if len(nutritionPlans) > 0 {
		report.LatestNutritionPlan = &nutritionPlans[0]
	}

	uc.Log.Info("patient report generated",
		zap.String("patient_id", patientID),
		zap.Int("health_records", len(healthRecords)),
		zap.Int("nutrition_plans", len(nutritionPlans)),
		zap.Int("chat_turns", totalChats),
	)
	return report, nil
}

func (uc *reportUsecase) GetSummary(ctx context.Context, session *models.Session, patientID string, now time.Time) (*responses.PatientSummary, error) {
	if err := access.Authorize(session, patientID, access.CapabilityReadOwnOrAny); err != nil {
		return nil, err
	}

	patient, patientUser, err := uc.resolvePatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	latestRecord, err := uc.HealthRecordRepository.FindLatestByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	latestPlan, err := uc.NutritionPlanRepository.FindLatestByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	weekSince := now.AddDate(0, 0, -constvars.SummaryChatWindowDays)
	weekTurns, err := uc.ChatRepository.FindByUserIDSince(ctx, patient.UserID, weekSince)
	if err != nil {
		return nil, err
	}

	summary := &responses.PatientSummary{
		PatientName: patientUser.Name,
		Age:         patient.Age,
		Gender:      patient.Gender,
		RecentActivity: responses.SummaryRecentActivity{
			ChatInteractionsThisWeek: len(weekTurns),
			EngagementStatus:         constvars.EngagementStatusInactive,
		},
		HealthStatus:    constvars.HealthStatusNoRecords,
		NutritionStatus: constvars.NutritionStatusNoPlan,
	}

	if len(weekTurns) > 0 {
		summary.RecentActivity.EngagementStatus = constvars.EngagementStatusActive
	}
	if latestRecord != nil {
		checkup := latestRecord.CreatedAt.Format(time.RFC3339)
		summary.LastHealthCheckup = &checkup
		summary.HealthStatus = constvars.HealthStatusUnderCare
	}
	if latestPlan != nil {
		plan := latestPlan.CreatedAt.Format(time.RFC3339)
		summary.LastNutritionPlan = &plan
		summary.NutritionStatus = constvars.NutritionStatusHasPlan
	}

	return summary, nil
}

func (uc *reportUsecase) resolvePatient(ctx context.Context, patientID string) (*models.Patient, *models.User, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, exceptions.ErrPatientNotFound(nil)
	}

	patientUser, err := uc.UserRepository.FindByID(ctx, patient.UserID)
	if err != nil {
		return nil, nil, err
	}
	if patientUser == nil {
		return nil, nil, exceptions.ErrUserNotFound(nil)
	}
	return patient, patientUser, nil
}

// classifyChatTurns counts user-authored turns whose message contains a
// health or nutrition keyword. A message may count toward both sets.
func classifyChatTurns(turns []models.ChatTurn) (healthQueries, nutritionQueries int) {
	for _, turn := range turns {
		if turn.Role != constvars.ChatRoleUser {
			continue
		}
		message := strings.ToLower(turn.Message)
		if containsAny(message, constvars.ReportHealthKeywords) {
			healthQueries++
		}
		if containsAny(message, constvars.ReportNutritionKeywords) {
			nutritionQueries++
		}
	}
	return healthQueries, nutritionQueries
}

func containsAny(message string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func engagementLevel(totalChats int) string {
	switch {
	case totalChats > 10:
		return constvars.EngagementLevelHigh
	case totalChats > 5:
		return constvars.EngagementLevelMedium
	default:
		return constvars.EngagementLevelLow
	}
}

func buildRecommendations(recordCount, planCount, chatCount int) responses.Recommendations {
	recommendations := responses.Recommendations{
		HealthMonitoring:  constvars.RecommendationInitialAssessment,
		NutritionFollowUp: constvars.RecommendationInitialPlan,
		Engagement:        constvars.RecommendationEncourageChatbot,
	}
	if recordCount > 0 {
		recommendations.HealthMonitoring = constvars.RecommendationKeepCheckups
	}
	if planCount > 0 {
		recommendations.NutritionFollowUp = constvars.RecommendationMonitorAdherence
	}
	if chatCount > 5 {
		recommendations.Engagement = constvars.RecommendationGoodEngagement
	}
	return recommendations
}

func buildSDGAlignment(recordCount, planCount, healthQueries, nutritionQueries, chatCount int) responses.SDGAlignment {
	alignment := responses.SDGAlignment{
		SDG2ZeroHunger: responses.SDGZeroHunger{
			NutritionPlansProvided:    planCount > 0,
			NutritionAwarenessQueries: nutritionQueries,
			Status:                    constvars.SDGStatusNeedsAttention,
		},
		SDG3GoodHealth: responses.SDGGoodHealth{
			HealthRecordsMaintained:  recordCount > 0,
			HealthAwarenessQueries:   healthQueries,
			PreventiveCareEngagement: chatCount > 0,
			Status:                   constvars.SDGStatusNeedsAttention,
		},
	}
	if planCount > 0 || nutritionQueries > 0 {
		alignment.SDG2ZeroHunger.Status = constvars.SDGStatusActive
	}
	if recordCount > 0 || healthQueries > 0 {
		alignment.SDG3GoodHealth.Status = constvars.SDGStatusActive
	}
	return alignment
}

func headRecords(healthRecords []models.HealthRecord, size int) []models.HealthRecord {
	if len(healthRecords) <= size {
		return healthRecords
	}
	return healthRecords[:size]
}

func headPlans(plans []models.NutritionPlan, size int) []models.NutritionPlan {
	if len(plans) <= size {
		return plans
	}
	return plans[:size]
}
