package patients

import (
	"context"
	"fmt"
	"testing"
	"time"

	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/pkg/constvars"
	"nutripulse-service/internal/pkg/dto/requests"
	"nutripulse-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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
	id := fmt.Sprintf("patient-%d", len(f.patients)+1)
	stored := *patient
	stored.ID = id
	f.patients[id] = &stored
	return id, nil
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
	copied := *patient
	f.patients[patient.ID] = &copied
	return nil
}

type fakeNurseRepository struct {
	nurses map[string]*models.Nurse
}

func (f *fakeNurseRepository) CreateNurse(_ context.Context, nurse *models.Nurse) (string, error) {
	id := fmt.Sprintf("nurse-%d", len(f.nurses)+1)
	stored := *nurse
	stored.ID = id
	f.nurses[id] = &stored
	return id, nil
}

func (f *fakeNurseRepository) FindByUserID(_ context.Context, userID string) (*models.Nurse, error) {
	for _, nurse := range f.nurses {
		if nurse.UserID == userID {
			copied := *nurse
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeHealthRecordRepository struct {
	records []models.HealthRecord
}

func (f *fakeHealthRecordRepository) CreateHealthRecord(_ context.Context, record *models.HealthRecord) (string, error) {
	id := fmt.Sprintf("record-%d", len(f.records)+1)
	stored := *record
	stored.ID = id
	f.records = append(f.records, stored)
	return id, nil
}

func (f *fakeHealthRecordRepository) FindByPatientID(_ context.Context, patientID string) ([]models.HealthRecord, error) {
	result := make([]models.HealthRecord, 0)
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].PatientID == patientID {
			result = append(result, f.records[i])
		}
	}
	return result, nil
}

func (f *fakeHealthRecordRepository) FindByPatientIDSince(_ context.Context, patientID string, since time.Time) ([]models.HealthRecord, error) {
	all, _ := f.FindByPatientID(context.Background(), patientID)
	result := make([]models.HealthRecord, 0)
	for _, record := range all {
		if !record.CreatedAt.Before(since) {
			result = append(result, record)
		}
	}
	return result, nil
}

func (f *fakeHealthRecordRepository) FindLatestByPatientID(_ context.Context, patientID string) (*models.HealthRecord, error) {
	all, _ := f.FindByPatientID(context.Background(), patientID)
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

type fakeNutritionPlanRepository struct {
	plans []models.NutritionPlan
}

func (f *fakeNutritionPlanRepository) CreateNutritionPlan(_ context.Context, plan *models.NutritionPlan) (string, error) {
	id := fmt.Sprintf("plan-%d", len(f.plans)+1)
	stored := *plan
	stored.ID = id
	f.plans = append(f.plans, stored)
	return id, nil
}

func (f *fakeNutritionPlanRepository) FindByPatientID(_ context.Context, patientID string) ([]models.NutritionPlan, error) {
	result := make([]models.NutritionPlan, 0)
	for i := len(f.plans) - 1; i >= 0; i-- {
		if f.plans[i].PatientID == patientID {
			result = append(result, f.plans[i])
		}
	}
	return result, nil
}

func (f *fakeNutritionPlanRepository) FindByPatientIDSince(_ context.Context, patientID string, since time.Time) ([]models.NutritionPlan, error) {
	all, _ := f.FindByPatientID(context.Background(), patientID)
	result := make([]models.NutritionPlan, 0)
	for _, plan := range all {
		if !plan.CreatedAt.Before(since) {
			result = append(result, plan)
		}
	}
	return result, nil
}

func (f *fakeNutritionPlanRepository) FindLatestByPatientID(_ context.Context, patientID string) (*models.NutritionPlan, error) {
	all, _ := f.FindByPatientID(context.Background(), patientID)
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

type patientUsecaseFixture struct {
	usecase     PatientUsecase
	patientRepo *fakePatientRepository
	userRepo    *fakeUserRepository
	nurseRepo   *fakeNurseRepository
	recordRepo  *fakeHealthRecordRepository
	planRepo    *fakeNutritionPlanRepository
}

func newPatientUsecaseFixture() *patientUsecaseFixture {
	patientRepo := &fakePatientRepository{patients: map[string]*models.Patient{
		"patient-1": {ID: "patient-1", UserID: "user-p1", Age: 34, Gender: constvars.GenderFemale},
	}}
	userRepo := &fakeUserRepository{users: map[string]*models.User{
		"user-p1": {ID: "user-p1", Name: "Ana Silva", Email: "ana@example.com", Role: constvars.RoleTypePatient},
		"user-n1": {ID: "user-n1", Name: "Joao Santos", Email: "joao@example.com", Role: constvars.RoleTypeNurse},
	}}
	nurseRepo := &fakeNurseRepository{nurses: map[string]*models.Nurse{
		"nurse-1": {ID: "nurse-1", UserID: "user-n1", Specialization: "nutrition", Hospital: "General"},
	}}
	recordRepo := &fakeHealthRecordRepository{}
	planRepo := &fakeNutritionPlanRepository{}

	return &patientUsecaseFixture{
		usecase:     NewPatientUsecase(zap.NewNop(), patientRepo, userRepo, nurseRepo, recordRepo, planRepo),
		patientRepo: patientRepo,
		userRepo:    userRepo,
		nurseRepo:   nurseRepo,
		recordRepo:  recordRepo,
		planRepo:    planRepo,
	}
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

func TestPatientUsecase_GetPatient(t *testing.T) {
	fixture := newPatientUsecaseFixture()

	t.Run("nurse reads any patient", func(t *testing.T) {
		snapshot, err := fixture.usecase.GetPatient(context.Background(), nurseSession(), "patient-1")
		require.NoError(t, err)
		assert.Equal(t, "patient-1", snapshot.ID)
		assert.Equal(t, 34, snapshot.Age)
	})

	t.Run("snapshot embeds the owning user", func(t *testing.T) {
		snapshot, err := fixture.usecase.GetPatient(context.Background(), nurseSession(), "patient-1")
		require.NoError(t, err)
		require.NotNil(t, snapshot.User)
		assert.Equal(t, "user-p1", snapshot.User.ID)
		assert.Equal(t, "Ana Silva", snapshot.User.Name)
		assert.Equal(t, "ana@example.com", snapshot.User.Email)
		assert.Equal(t, constvars.RoleTypePatient, snapshot.User.Role)
	})

	t.Run("patient reads own profile", func(t *testing.T) {
		snapshot, err := fixture.usecase.GetPatient(context.Background(), patientSession("patient-1"), "patient-1")
		require.NoError(t, err)
		assert.Equal(t, "patient-1", snapshot.ID)
	})

	t.Run("patient cannot read another patient", func(t *testing.T) {
		_, err := fixture.usecase.GetPatient(context.Background(), patientSession("patient-2"), "patient-1")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
	})

	t.Run("missing patient is not found", func(t *testing.T) {
		_, err := fixture.usecase.GetPatient(context.Background(), nurseSession(), "patient-404")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})

	t.Run("denial is checked before existence", func(t *testing.T) {
		_, err := fixture.usecase.GetPatient(context.Background(), patientSession("patient-1"), "patient-404")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
	})
}

func TestPatientUsecase_UpdatePatient(t *testing.T) {
	fixture := newPatientUsecaseFixture()

	age := 35
	nutritionNeeds := "low sodium"
	snapshot, err := fixture.usecase.UpdatePatient(context.Background(), patientSession("patient-1"), "patient-1", &requests.UpdatePatient{
		Age:            &age,
		NutritionNeeds: &nutritionNeeds,
	})
	require.NoError(t, err)

	assert.Equal(t, 35, snapshot.Age)
	assert.Equal(t, "low sodium", snapshot.NutritionNeeds)
	// Fields that were not sent keep their values.
	assert.Equal(t, constvars.GenderFemale, snapshot.Gender)
	require.NotNil(t, snapshot.User)
	assert.Equal(t, "Ana Silva", snapshot.User.Name)

	stored := fixture.patientRepo.patients["patient-1"]
	assert.Equal(t, 35, stored.Age)
	assert.Equal(t, "low sodium", stored.NutritionNeeds)
}

func TestPatientUsecase_AddHealthRecord(t *testing.T) {
	t.Run("nurse records a checkup", func(t *testing.T) {
		fixture := newPatientUsecaseFixture()

		created, err := fixture.usecase.AddHealthRecord(context.Background(), nurseSession(), "patient-1", &requests.CreateHealthRecord{
			CheckupNotes:  "blood pressure normal",
			Prescriptions: "none",
		})
		require.NoError(t, err)

		assert.Equal(t, "patient-1", created.Record.PatientID)
		assert.Equal(t, "nurse-1", created.Record.NurseID)
		assert.NotEmpty(t, created.Record.ID)
		require.Len(t, fixture.recordRepo.records, 1)
	})

	t.Run("patient cannot write a record, even their own", func(t *testing.T) {
		fixture := newPatientUsecaseFixture()

		_, err := fixture.usecase.AddHealthRecord(context.Background(), patientSession("patient-1"), "patient-1", &requests.CreateHealthRecord{CheckupNotes: "self"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		assert.Empty(t, fixture.recordRepo.records)
	})

	t.Run("nurse session without a profile document", func(t *testing.T) {
		fixture := newPatientUsecaseFixture()
		fixture.nurseRepo.nurses = map[string]*models.Nurse{}

		_, err := fixture.usecase.AddHealthRecord(context.Background(), nurseSession(), "patient-1", &requests.CreateHealthRecord{CheckupNotes: "x"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})
}

func TestPatientUsecase_NutritionPlans(t *testing.T) {
	fixture := newPatientUsecaseFixture()

	created, err := fixture.usecase.AddNutritionPlan(context.Background(), nurseSession(), "patient-1", &requests.CreateNutritionPlan{DietPlan: "more iron, less sugar"})
	require.NoError(t, err)
	assert.Equal(t, "nurse-1", created.Plan.NurseID)

	plans, err := fixture.usecase.GetNutritionPlans(context.Background(), patientSession("patient-1"), "patient-1")
	require.NoError(t, err)
	require.Len(t, plans.Plans, 1)
	assert.Equal(t, "more iron, less sugar", plans.Plans[0].DietPlan)

	_, err = fixture.usecase.AddNutritionPlan(context.Background(), patientSession("patient-1"), "patient-1", &requests.CreateNutritionPlan{DietPlan: "candy"})
	require.Error(t, err)
	assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
}

func TestPatientUsecase_GetHealthRecords(t *testing.T) {
	fixture := newPatientUsecaseFixture()

	records, err := fixture.usecase.GetHealthRecords(context.Background(), nurseSession(), "patient-1")
	require.NoError(t, err)
	assert.Empty(t, records.Records)

	_, err = fixture.usecase.AddHealthRecord(context.Background(), nurseSession(), "patient-1", &requests.CreateHealthRecord{CheckupNotes: "first visit"})
	require.NoError(t, err)

	records, err = fixture.usecase.GetHealthRecords(context.Background(), patientSession("patient-1"), "patient-1")
	require.NoError(t, err)
	require.Len(t, records.Records, 1)
	assert.Equal(t, "first visit", records.Records[0].CheckupNotes)
}
