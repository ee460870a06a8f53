package patients_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/carewell-org/hospital/patients"
	patientsTest "github.com/carewell-org/hospital/patients/test"
	"github.com/carewell-org/hospital/store"
)

type fakeRepository struct {
	created []patients.Patient
}

func (f *fakeRepository) Get(ctx context.Context, id string) (*patients.Patient, error) {
	return nil, patients.ErrNotFound
}

func (f *fakeRepository) List(ctx context.Context, filter *patients.Filter, pagination store.Pagination, sorts []*store.Sort) ([]*patients.Patient, error) {
	return nil, nil
}

func (f *fakeRepository) Create(ctx context.Context, patient patients.Patient) (*patients.Patient, error) {
	id := primitive.NewObjectID()
	patient.Id = &id
	f.created = append(f.created, patient)
	return &patient, nil
}

var _ = Describe("Patients Service", func() {
	var repo *fakeRepository
	var service patients.Service

	BeforeEach(func() {
		repo = &fakeRepository{}

		var err error
		service, err = patients.NewService(repo, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Create", func() {
		It("assigns a medical record number", func() {
			patient := patientsTest.RandomPatient()
			patient.Mrn = nil

			created, err := service.Create(context.Background(), patient)

			Expect(err).ToNot(HaveOccurred())
			Expect(created.Mrn).ToNot(BeNil())
			_, err = uuid.Parse(*created.Mrn)
			Expect(err).ToNot(HaveOccurred())
		})

		It("keeps an existing medical record number", func() {
			patient := patientsTest.RandomPatient()
			mrn := *patient.Mrn

			created, err := service.Create(context.Background(), patient)

			Expect(err).ToNot(HaveOccurred())
			Expect(created.Mrn).ToNot(BeNil())
			Expect(*created.Mrn).To(Equal(mrn))
		})
	})
})
