package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adminrec/personnel-management/internal/auth"
	authPostgres "github.com/adminrec/personnel-management/internal/auth/postgres"
)

func TestAuthPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Postgres Suite")
}

// SQLite-compatible models for testing
type SQLiteEmployee struct {
	ID                 int64  `gorm:"primaryKey"`
	IsSectorSupervisor bool   `gorm:"column:is_sector_supervisor"`
	LastName           string `gorm:"column:last_name"`
	FirstName          string `gorm:"column:first_name"`
	DNI                int    `gorm:"column:dni;uniqueIndex"`
	Email              string `gorm:"column:email"`
	PositionID         int64  `gorm:"column:position_id"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}

func (SQLiteEmployee) TableName() string { return "employees" }

type SQLiteAccount struct {
	ID           int64  `gorm:"primaryKey"`
	EmployeeID   int64  `gorm:"column:employee_id;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash"`
	Role         string `gorm:"column:role"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

func (SQLiteAccount) TableName() string { return "accounts" }

var _ = Describe("Auth PostgreSQL Repository", func() {
	var (
		db        *gorm.DB
		repo      *authPostgres.AccountRepository
		directory *authPostgres.EmployeeDirectory
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteEmployee{}, &SQLiteAccount{})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.Create(&SQLiteEmployee{ID: 1, LastName: "Garcia", FirstName: "Laura", DNI: 30111222, IsSectorSupervisor: true}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&SQLiteEmployee{ID: 2, LastName: "Perez", FirstName: "Martin", DNI: 28999888}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&SQLiteAccount{ID: 1, EmployeeID: 1, PasswordHash: "$argon2id$hash", Role: "SUPERVISOR"}).Error).NotTo(HaveOccurred())

		repo = authPostgres.NewAccountRepository(db)
		directory = authPostgres.NewEmployeeDirectory(db)
	})

	Describe("GetByEmployeeDNI", func() {
		It("should find the account through the employee dni", func() {
			account, err := repo.GetByEmployeeDNI(30111222)
			Expect(err).NotTo(HaveOccurred())
			Expect(account.EmployeeID).To(Equal(int64(1)))
			Expect(account.Role).To(Equal(auth.RoleSupervisor))
		})

		It("should not find an account for an employee without one", func() {
			_, err := repo.GetByEmployeeDNI(28999888)
			Expect(err).To(MatchError(authPostgres.ErrAccountNotFound))
		})

		It("should not find a soft-deleted account", func() {
			now := time.Now()
			Expect(db.Model(&SQLiteAccount{}).Where("id = ?", 1).Update("deleted_at", &now).Error).NotTo(HaveOccurred())

			_, err := repo.GetByEmployeeDNI(30111222)
			Expect(err).To(MatchError(authPostgres.ErrAccountNotFound))
		})
	})

	Describe("Create and ExistsForEmployeeDNI", func() {
		It("should create and then report the account as existing", func() {
			exists, err := repo.ExistsForEmployeeDNI(28999888)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())

			err = repo.Create(&auth.Account{EmployeeID: 2, PasswordHash: "$argon2id$x", Role: auth.RoleEmployee})
			Expect(err).NotTo(HaveOccurred())

			exists, err = repo.ExistsForEmployeeDNI(28999888)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})
	})

	Describe("SetRoleByEmployeeDNI", func() {
		It("should move the role of the bound account", func() {
			found, err := repo.SetRoleByEmployeeDNI(30111222, "EMPLOYEE")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())

			account, err := repo.GetByEmployeeDNI(30111222)
			Expect(err).NotTo(HaveOccurred())
			Expect(account.Role).To(Equal(auth.RoleEmployee))
		})

		It("should report false when the employee has no account", func() {
			found, err := repo.SetRoleByEmployeeDNI(28999888, "SUPERVISOR")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})

	Describe("EmployeeDirectory", func() {
		It("should resolve an employee by dni", func() {
			emp, err := directory.GetByDNI(30111222)
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.FirstName).To(Equal("Laura"))
			Expect(emp.IsSectorSupervisor).To(BeTrue())
		})

		It("should not resolve a soft-deleted employee", func() {
			now := time.Now()
			Expect(db.Model(&SQLiteEmployee{}).Where("id = ?", 1).Update("deleted_at", &now).Error).NotTo(HaveOccurred())

			_, err := directory.GetByDNI(30111222)
			Expect(err).To(MatchError(authPostgres.ErrEmployeeNotFound))
		})
	})
})
