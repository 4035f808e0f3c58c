package reports

import (
	"context"
	"testing"
	"time"

	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/pkg/constvars"
	"nutripulse-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var reportNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

type fakeUserRepository struct {
	users map[string]*models.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *models.User) (string, error) {
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, userID string) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) DeleteByID(_ context.Context, userID string) error {
	delete(f.users, userID)
	return nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	f.patients[patient.ID] = patient
	return patient.ID, nil
}

func (f *fakePatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	patient, ok := f.patients[patientID]
	if !ok {
		return nil, nil
	}
	copied := *patient
	return &copied, nil
}

func (f *fakePatientRepository) FindByUserID(_ context.Context, userID string) (*models.Patient, error) {
	for _, patient := range f.patients {
		if patient.UserID == userID {
			copied := *patient
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepository) UpdatePatient(_ context.Context, patient *models.Patient) error {
	f.patients[patient.ID] = patient
	return nil
}

type fakeHealthRecordRepository struct {
	records []models.HealthRecord
}

func (f *fakeHealthRecordRepository) CreateHealthRecord(_ context.Context, record *models.HealthRecord) (string, error) {
	f.records = append(f.records, *record)
	return record.ID, nil
}

func (f *fakeHealthRecordRepository) FindByPatientID(_ context.Context, patientID string) ([]models.HealthRecord, error) {
	return f.findSince(patientID, time.Time{}), nil
}

func (f *fakeHealthRecordRepository) FindByPatientIDSince(_ context.Context, patientID string, since time.Time) ([]models.HealthRecord, error) {
	return f.findSince(patientID, since), nil
}

func (f *fakeHealthRecordRepository) FindLatestByPatientID(_ context.Context, patientID string) (*models.HealthRecord, error) {
	all := f.findSince(patientID, time.Time{})
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

// findSince mimics the mongo repository: newest first, boundary inclusive.
func (f *fakeHealthRecordRepository) findSince(patientID string, since time.Time) []models.HealthRecord {
	result := make([]models.HealthRecord, 0)
	for _, record := range f.records {
		if record.PatientID == patientID && !record.CreatedAt.Before(since) {
			result = append(result, record)
		}
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

type fakeNutritionPlanRepository struct {
	plans []models.NutritionPlan
}

func (f *fakeNutritionPlanRepository) CreateNutritionPlan(_ context.Context, plan *models.NutritionPlan) (string, error) {
	f.plans = append(f.plans, *plan)
	return plan.ID, nil
}

func (f *fakeNutritionPlanRepository) FindByPatientID(_ context.Context, patientID string) ([]models.NutritionPlan, error) {
	return f.findSince(patientID, time.Time{}), nil
}

func (f *fakeNutritionPlanRepository) FindByPatientIDSince(_ context.Context, patientID string, since time.Time) ([]models.NutritionPlan, error) {
	return f.findSince(patientID, since), nil
}

func (f *fakeNutritionPlanRepository) FindLatestByPatientID(_ context.Context, patientID string) (*models.NutritionPlan, error) {
	all := f.findSince(patientID, time.Time{})
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

func (f *fakeNutritionPlanRepository) findSince(patientID string, since time.Time) []models.NutritionPlan {
	result := make([]models.NutritionPlan, 0)
	for _, plan := range f.plans {
		if plan.PatientID == patientID && !plan.CreatedAt.Before(since) {
			result = append(result, plan)
		}
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

type fakeChatRepository struct {
	turns []models.ChatTurn
}

func (f *fakeChatRepository) CreateTurnPair(_ context.Context, userTurn, assistantTurn *models.ChatTurn) error {
	f.turns = append(f.turns, *userTurn, *assistantTurn)
	return nil
}

// Newest first, boundary inclusive.
func (f *fakeChatRepository) FindByUserIDSince(_ context.Context, userID string, since time.Time) ([]models.ChatTurn, error) {
	result := make([]models.ChatTurn, 0)
	for i := len(f.turns) - 1; i >= 0; i-- {
		if f.turns[i].UserID == userID && !f.turns[i].CreatedAt.Before(since) {
			result = append(result, f.turns[i])
		}
	}
	return result, nil
}

func (f *fakeChatRepository) FindRecentByUserID(_ context.Context, userID string, limit int64) ([]models.ChatTurn, error) {
	result := make([]models.ChatTurn, 0)
	for i := len(f.turns) - 1; i >= 0 && int64(len(result)) < limit; i-- {
		if f.turns[i].UserID == userID {
			result = append(result, f.turns[i])
		}
	}
	return result, nil
}

func (f *fakeChatRepository) DeleteByUserID(_ context.Context, userID string) (int64, error) {
	kept := make([]models.ChatTurn, 0)
	var deleted int64
	for _, turn := range f.turns {
		if turn.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, turn)
	}
	f.turns = kept
	return deleted, nil
}

type reportFixture struct {
	usecase    ReportUsecase
	recordRepo *fakeHealthRecordRepository
	planRepo   *fakeNutritionPlanRepository
	chatRepo   *fakeChatRepository
}

func newReportFixture() *reportFixture {
	userRepo := &fakeUserRepository{users: map[string]*models.User{
		"user-p1": {ID: "user-p1", Name: "Ana Silva", Email: "ana@example.com", Role: constvars.RoleTypePatient},
	}}
	patientRepo := &fakePatientRepository{patients: map[string]*models.Patient{
		"patient-1": {ID: "patient-1", UserID: "user-p1", Age: 29, Gender: constvars.GenderFemale, NutritionNeeds: "vegetarian"},
	}}
	recordRepo := &fakeHealthRecordRepository{}
	planRepo := &fakeNutritionPlanRepository{}
	chatRepo := &fakeChatRepository{}

	return &reportFixture{
		usecase:    NewReportUsecase(zap.NewNop(), userRepo, patientRepo, recordRepo, planRepo, chatRepo),
		recordRepo: recordRepo,
		planRepo:   planRepo,
		chatRepo:   chatRepo,
	}
}

func (f *reportFixture) addRecord(createdAt time.Time) {
	f.recordRepo.records = append(f.recordRepo.records, models.HealthRecord{
		ID:           "record-x",
		PatientID:    "patient-1",
		NurseID:      "nurse-1",
		CheckupNotes: "checkup",
		CreatedAt:    createdAt,
	})
}

func (f *reportFixture) addPlan(createdAt time.Time) {
	f.planRepo.plans = append(f.planRepo.plans, models.NutritionPlan{
		ID:        "plan-x",
		PatientID: "patient-1",
		NurseID:   "nurse-1",
		DietPlan:  "balanced",
		CreatedAt: createdAt,
	})
}

func (f *reportFixture) addUserTurn(message string, createdAt time.Time) {
	f.chatRepo.turns = append(f.chatRepo.turns, models.ChatTurn{
		UserID:    "user-p1",
		Role:      constvars.ChatRoleUser,
		Message:   message,
		CreatedAt: createdAt,
	})
}

func (f *reportFixture) addAssistantTurn(createdAt time.Time) {
	f.chatRepo.turns = append(f.chatRepo.turns, models.ChatTurn{
		UserID:    "user-p1",
		Role:      constvars.ChatRoleAssistant,
		Message:   "assistant reply about pain and meals",
		CreatedAt: createdAt,
	})
}

func nurseSession() *models.Session {
	return &models.Session{SessionID: "s-n", UserID: "user-n1", Role: constvars.RoleTypeNurse, NurseID: "nurse-1"}
}

func patientSession(patientID string) *models.Session {
	return &models.Session{SessionID: "s-p", UserID: "user-p1", Role: constvars.RoleTypePatient, PatientID: patientID}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected *exceptions.CustomError, got %T", err)
	return customErr.StatusCode
}

func TestReportUsecase_GenerateReport_Access(t *testing.T) {
	fixture := newReportFixture()

	t.Run("patient reads own report", func(t *testing.T) {
		report, err := fixture.usecase.GenerateReport(context.Background(), patientSession("patient-1"), "patient-1", reportNow)
		require.NoError(t, err)
		assert.Equal(t, "Ana Silva", report.PatientInfo.Name)
	})

	t.Run("foreign patient is denied", func(t *testing.T) {
		_, err := fixture.usecase.GenerateReport(context.Background(), patientSession("patient-2"), "patient-1", reportNow)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
	})

	t.Run("unknown patient is not found", func(t *testing.T) {
		_, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-404", reportNow)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})
}

func TestReportUsecase_GenerateReport_Windows(t *testing.T) {
	fixture := newReportFixture()

	// Inside and outside the 180-day record window.
	fixture.addRecord(reportNow.AddDate(0, 0, -179))
	fixture.addRecord(reportNow.AddDate(0, 0, -181))
	fixture.addPlan(reportNow.AddDate(0, 0, -181))

	// Inside and outside the 30-day chat window.
	fixture.addUserTurn("hello there", reportNow.AddDate(0, 0, -29))
	fixture.addUserTurn("old question", reportNow.AddDate(0, 0, -31))

	report, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-1", reportNow)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Statistics.TotalHealthRecords)
	assert.Equal(t, 0, report.Statistics.TotalNutritionPlans)
	assert.Equal(t, 1, report.Statistics.TotalChatInteractions)
	require.NotNil(t, report.LatestHealthRecord)
	assert.Nil(t, report.LatestNutritionPlan)
	assert.Equal(t, constvars.ReportPeriodSixMonths, report.ReportPeriod.HealthRecordsPeriod)
	assert.Equal(t, constvars.ReportPeriodThirtyDays, report.ReportPeriod.ChatInteractionsPeriod)
}

func TestReportUsecase_GenerateReport_KeywordClassification(t *testing.T) {
	fixture := newReportFixture()

	fixture.addUserTurn("I have PAIN in my back", reportNow.AddDate(0, 0, -1))
	fixture.addUserTurn("need a meal plan", reportNow.AddDate(0, 0, -2))
	fixture.addUserTurn("pain and meal advice please", reportNow.AddDate(0, 0, -3))
	fixture.addUserTurn("just saying hi", reportNow.AddDate(0, 0, -4))
	// Assistant turns never count toward the keyword tallies.
	fixture.addAssistantTurn(reportNow.AddDate(0, 0, -1))

	report, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-1", reportNow)
	require.NoError(t, err)

	assert.Equal(t, 2, report.RecentChatSummary.HealthQueries)
	assert.Equal(t, 2, report.RecentChatSummary.NutritionQueries)
	assert.Equal(t, 5, report.RecentChatSummary.TotalMessages)
}

func TestReportUsecase_GenerateReport_EngagementBoundaries(t *testing.T) {
	cases := []struct {
		turns int
		level string
	}{
		{0, constvars.EngagementLevelLow},
		{5, constvars.EngagementLevelLow},
		{6, constvars.EngagementLevelMedium},
		{10, constvars.EngagementLevelMedium},
		{11, constvars.EngagementLevelHigh},
	}

	for _, tc := range cases {
		fixture := newReportFixture()
		for i := 0; i < tc.turns; i++ {
			fixture.addUserTurn("hello", reportNow.AddDate(0, 0, -1))
		}

		report, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-1", reportNow)
		require.NoError(t, err)
		assert.Equalf(t, tc.level, report.RecentChatSummary.EngagementLevel, "%d turns", tc.turns)
	}
}

func TestReportUsecase_GenerateReport_Recommendations(t *testing.T) {
	t.Run("empty history gets the starter recommendations", func(t *testing.T) {
		fixture := newReportFixture()

		report, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-1", reportNow)
		require.NoError(t, err)

		assert.Equal(t, constvars.RecommendationInitialAssessment, report.Recommendations.HealthMonitoring)
		assert.Equal(t, constvars.RecommendationInitialPlan, report.Recommendations.NutritionFollowUp)
		assert.Equal(t, constvars.RecommendationEncourageChatbot, report.Recommendations.Engagement)
	})

	t.Run("active history flips every recommendation", func(t *testing.T) {
		fixture := newReportFixture()
		fixture.addRecord(reportNow.AddDate(0, 0, -10))
		fixture.addPlan(reportNow.AddDate(0, 0, -10))
		for i := 0; i < 6; i++ {
			fixture.addUserTurn("checking in", reportNow.AddDate(0, 0, -1))
		}

		report, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-1", reportNow)
		require.NoError(t, err)

		assert.Equal(t, constvars.RecommendationKeepCheckups, report.Recommendations.HealthMonitoring)
		assert.Equal(t, constvars.RecommendationMonitorAdherence, report.Recommendations.NutritionFollowUp)
		assert.Equal(t, constvars.RecommendationGoodEngagement, report.Recommendations.Engagement)
	})
}

func TestReportUsecase_GenerateReport_SDGAlignment(t *testing.T) {
	t.Run("everything needs attention when empty", func(t *testing.T) {
		fixture := newReportFixture()

		report, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-1", reportNow)
		require.NoError(t, err)

		assert.Equal(t, constvars.SDGStatusNeedsAttention, report.SDGAlignment.SDG2ZeroHunger.Status)
		assert.Equal(t, constvars.SDGStatusNeedsAttention, report.SDGAlignment.SDG3GoodHealth.Status)
		assert.False(t, report.SDGAlignment.SDG3GoodHealth.PreventiveCareEngagement)
	})

	t.Run("nutrition queries alone activate the hunger axis", func(t *testing.T) {
		fixture := newReportFixture()
		fixture.addUserTurn("what food should I eat", reportNow.AddDate(0, 0, -1))

		report, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-1", reportNow)
		require.NoError(t, err)

		assert.Equal(t, constvars.SDGStatusActive, report.SDGAlignment.SDG2ZeroHunger.Status)
		assert.False(t, report.SDGAlignment.SDG2ZeroHunger.NutritionPlansProvided)
		assert.True(t, report.SDGAlignment.SDG3GoodHealth.PreventiveCareEngagement)
	})

	t.Run("records alone activate the health axis", func(t *testing.T) {
		fixture := newReportFixture()
		fixture.addRecord(reportNow.AddDate(0, 0, -10))

		report, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-1", reportNow)
		require.NoError(t, err)

		assert.Equal(t, constvars.SDGStatusActive, report.SDGAlignment.SDG3GoodHealth.Status)
		assert.True(t, report.SDGAlignment.SDG3GoodHealth.HealthRecordsMaintained)
		assert.Equal(t, constvars.SDGStatusNeedsAttention, report.SDGAlignment.SDG2ZeroHunger.Status)
	})
}

func TestReportUsecase_GenerateReport_RecentListsCapped(t *testing.T) {
	fixture := newReportFixture()
	for i := 0; i < 7; i++ {
		fixture.addRecord(reportNow.AddDate(0, 0, -i-1))
	}

	report, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-1", reportNow)
	require.NoError(t, err)

	assert.Equal(t, 7, report.Statistics.TotalHealthRecords)
	assert.Len(t, report.RecentHealthRecords, constvars.ReportRecentEntriesSize)
	// Newest first.
	assert.Equal(t, report.LatestHealthRecord.CreatedAt, report.RecentHealthRecords[0].CreatedAt)
}

func TestReportUsecase_GenerateReport_Idempotent(t *testing.T) {
	fixture := newReportFixture()
	fixture.addRecord(reportNow.AddDate(0, 0, -3))
	fixture.addPlan(reportNow.AddDate(0, 0, -4))
	fixture.addUserTurn("is this medicine safe", reportNow.AddDate(0, 0, -5))

	first, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-1", reportNow)
	require.NoError(t, err)
	second, err := fixture.usecase.GenerateReport(context.Background(), nurseSession(), "patient-1", reportNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReportUsecase_GetSummary(t *testing.T) {
	t.Run("empty patient", func(t *testing.T) {
		fixture := newReportFixture()

		summary, err := fixture.usecase.GetSummary(context.Background(), nurseSession(), "patient-1", reportNow)
		require.NoError(t, err)

		assert.Equal(t, "Ana Silva", summary.PatientName)
		assert.Nil(t, summary.LastHealthCheckup)
		assert.Nil(t, summary.LastNutritionPlan)
		assert.Equal(t, constvars.HealthStatusNoRecords, summary.HealthStatus)
		assert.Equal(t, constvars.NutritionStatusNoPlan, summary.NutritionStatus)
		assert.Equal(t, constvars.EngagementStatusInactive, summary.RecentActivity.EngagementStatus)
	})

	t.Run("active patient", func(t *testing.T) {
		fixture := newReportFixture()
		// The latest lookups are not windowed, old entries still count.
		fixture.addRecord(reportNow.AddDate(0, 0, -300))
		fixture.addPlan(reportNow.AddDate(0, 0, -200))
		fixture.addUserTurn("quick question", reportNow.AddDate(0, 0, -6))
		fixture.addUserTurn("too old to count", reportNow.AddDate(0, 0, -8))

		summary, err := fixture.usecase.GetSummary(context.Background(), nurseSession(), "patient-1", reportNow)
		require.NoError(t, err)

		require.NotNil(t, summary.LastHealthCheckup)
		require.NotNil(t, summary.LastNutritionPlan)
		assert.Equal(t, constvars.HealthStatusUnderCare, summary.HealthStatus)
		assert.Equal(t, constvars.NutritionStatusHasPlan, summary.NutritionStatus)
		assert.Equal(t, 1, summary.RecentActivity.ChatInteractionsThisWeek)
		assert.Equal(t, constvars.EngagementStatusActive, summary.RecentActivity.EngagementStatus)
	})

	t.Run("patient reads own summary", func(t *testing.T) {
		fixture := newReportFixture()
		_, err := fixture.usecase.GetSummary(context.Background(), patientSession("patient-1"), "patient-1", reportNow)
		require.NoError(t, err)

		_, err = fixture.usecase.GetSummary(context.Background(), patientSession("patient-2"), "patient-1", reportNow)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
	})
}
