// Package seed loads reference data from a YAML file. Loading is idempotent:
// rows that already exist are left untouched.
package seed

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"maintenance-hub-backend/internal/database/models"
	"maintenance-hub-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type CompanyData struct {
	Name    string `yaml:"name"`
	TaxID   string `yaml:"tax_id"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
}

type UserData struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Company  string `yaml:"company,omitempty"`
	Phone    string `yaml:"phone,omitempty"`
	JobTitle string `yaml:"job_title,omitempty"`
}

type MachineryData struct {
	Company         string  `yaml:"company"`
	Name            string  `yaml:"name"`
	Model           string  `yaml:"model"`
	Manufacturer    string  `yaml:"manufacturer"`
	SerialNumber    string  `yaml:"serial_number"`
	Category        string  `yaml:"category"`
	Location        string  `yaml:"location"`
	Status          string  `yaml:"status"`
	AcquisitionDate string  `yaml:"acquisition_date,omitempty"`
	AcquisitionCost float64 `yaml:"acquisition_cost"`
	HourMeter       float64 `yaml:"hour_meter"`
	Notes           string  `yaml:"notes,omitempty"`
}

type PartData struct {
	Company         string  `yaml:"company"`
	PartNumber      string  `yaml:"part_number"`
	Name            string  `yaml:"name"`
	Category        string  `yaml:"category"`
	Quantity        int     `yaml:"quantity"`
	MinimumQuantity int     `yaml:"minimum_quantity"`
	UnitPrice       float64 `yaml:"unit_price"`
	Supplier        string  `yaml:"supplier,omitempty"`
	Location        string  `yaml:"location,omitempty"`
}

type TutorialData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	VideoURL    string `yaml:"video_url"`
	Category    string `yaml:"category"`
	SortOrder   int    `yaml:"sort_order"`
	Published   bool   `yaml:"published"`
}

// File is the layout of a seed file
type File struct {
	Companies []CompanyData   `yaml:"companies"`
	Users     []UserData      `yaml:"users"`
	Machinery []MachineryData `yaml:"machinery"`
	Parts     []PartData      `yaml:"parts"`
	Tutorials []TutorialData  `yaml:"tutorials"`
}

// Count reports how many rows of one kind were created out of how many listed
type Count struct {
	Created int
	Total   int
}

// Result summarizes a seed run
type Result struct {
	Companies Count
	Users     Count
	Machinery Count
	Parts     Count
	Tutorials Count
}

// LoadFile reads and parses a seed file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes seed YAML
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &file, nil
}

// Apply inserts the file's rows in a single transaction. Companies are
// created first so the other sections can refer to them by name.
func Apply(db *gorm.DB, file *File) (*Result, error) {
	result := &Result{}
	err := db.Transaction(func(tx *gorm.DB) error {
		companies := make(map[string]*models.Company)
		for _, data := range file.Companies {
			company, created, err := createCompany(tx, data)
			if err != nil {
				return fmt.Errorf("failed to create company %s: %w", data.Name, err)
			}
			companies[data.Name] = company
			result.Companies.add(created)
		}

		for _, data := range file.Users {
			created, err := createUser(tx, data, companies)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", data.Email, err)
			}
			result.Users.add(created)
		}

		for _, data := range file.Machinery {
			created, err := createMachinery(tx, data, companies)
			if err != nil {
				return fmt.Errorf("failed to create machinery %s: %w", data.SerialNumber, err)
			}
			result.Machinery.add(created)
		}

		for _, data := range file.Parts {
			created, err := createPart(tx, data, companies)
			if err != nil {
				return fmt.Errorf("failed to create part %s: %w", data.PartNumber, err)
			}
			result.Parts.add(created)
		}

		for _, data := range file.Tutorials {
			created, err := createTutorial(tx, data)
			if err != nil {
				return fmt.Errorf("failed to create tutorial %s: %w", data.Title, err)
			}
			result.Tutorials.add(created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateSuperAdmin creates a super admin without a company, or promotes the
// existing profile with that email.
func CreateSuperAdmin(db *gorm.DB, email, password, fullName string) (*models.Profile, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || fullName == "" {
		return nil, false, errors.New("email and name are required")
	}
	if len(password) < 8 {
		return nil, false, errors.New("password must be at least 8 characters")
	}

	var profile models.Profile
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", email).First(&profile).Error
		switch {
		case err == nil:
		case errors.Is(err, gorm.ErrRecordNotFound):
			hash, err := service.HashPassword(password)
			if err != nil {
				return err
			}
			profile = models.Profile{Email: email, FullName: fullName, PasswordHash: hash, IsActive: true}
			if err := tx.Create(&profile).Error; err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
			created = true
		default:
			return fmt.Errorf("failed to query profile: %w", err)
		}
		return setRole(tx, profile.ID, models.RoleSuperAdmin)
	})
	if err != nil {
		return nil, false, err
	}
	return &profile, created, nil
}

func (c *Count) add(created bool) {
	c.Total++
	if created {
		c.Created++
	}
}

func lookupCompany(companies map[string]*models.Company, name string) (*models.Company, error) {
	company := companies[name]
	if company == nil {
		return nil, fmt.Errorf("company %q not found in seed file", name)
	}
	return company, nil
}

func createCompany(tx *gorm.DB, data CompanyData) (*models.Company, bool, error) {
	var company models.Company
	err := tx.Where("name = ?", data.Name).First(&company).Error
	if err == nil {
		return &company, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query company: %w", err)
	}

	company = models.Company{
		Name:     data.Name,
		TaxID:    data.TaxID,
		Email:    data.Email,
		Phone:    data.Phone,
		Address:  data.Address,
		IsActive: true,
	}
	if err := tx.Create(&company).Error; err != nil {
		return nil, false, err
	}
	return &company, true, nil
}

func createUser(tx *gorm.DB, data UserData, companies map[string]*models.Company) (bool, error) {
	role := models.Role(data.Role)
	if role == "" {
		role = models.RoleCommon
	}
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role %q", data.Role)
	}

	email := strings.ToLower(strings.TrimSpace(data.Email))
	var existing models.Profile
	err := tx.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query profile: %w", err)
	}

	profile := models.Profile{
		Email:    email,
		FullName: data.FullName,
		Phone:    data.Phone,
		JobTitle: data.JobTitle,
		IsActive: true,
	}
	if data.Company != "" {
		company, err := lookupCompany(companies, data.Company)
		if err != nil {
			return false, err
		}
		profile.CompanyID = &company.ID
	} else if role != models.RoleSuperAdmin && role != models.RoleVisitor {
		return false, fmt.Errorf("role %s requires a company", role)
	}

	hash, err := service.HashPassword(data.Password)
	if err != nil {
		return false, err
	}
	profile.PasswordHash = hash

	if err := tx.Create(&profile).Error; err != nil {
		return false, err
	}
	if err := setRole(tx, profile.ID, role); err != nil {
		return false, err
	}
	return true, nil
}

func setRole(tx *gorm.DB, userID uuid.UUID, role models.Role) error {
	var existing models.UserRole
	err := tx.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return tx.Model(&existing).Update("role", role).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to query role: %w", err)
	}
	return tx.Create(&models.UserRole{UserID: userID, Role: role}).Error
}

func createMachinery(tx *gorm.DB, data MachineryData, companies map[string]*models.Company) (bool, error) {
	company, err := lookupCompany(companies, data.Company)
	if err != nil {
		return false, err
	}

	var existing models.Machinery
	err = tx.Where("company_id = ? AND serial_number = ?", company.ID, data.SerialNumber).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query machinery: %w", err)
	}

	status := models.MachineryStatus(data.Status)
	if status == "" {
		status = models.MachineryStatusOperational
	}
	if !status.IsValid() {
		return false, fmt.Errorf("invalid machinery status %q", data.Status)
	}

	machinery := models.Machinery{
		CompanyID:       company.ID,
		Name:            data.Name,
		Model:           data.Model,
		Manufacturer:    data.Manufacturer,
		SerialNumber:    data.SerialNumber,
		Category:        data.Category,
		Location:        data.Location,
		Status:          status,
		AcquisitionCost: data.AcquisitionCost,
		HourMeter:       data.HourMeter,
		Notes:           data.Notes,
	}
	if data.AcquisitionDate != "" {
		acquired, err := time.Parse("2006-01-02", data.AcquisitionDate)
		if err != nil {
			return false, fmt.Errorf("invalid acquisition_date %q: %w", data.AcquisitionDate, err)
		}
		machinery.AcquisitionDate = &acquired
	}

	if err := tx.Create(&machinery).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createPart(tx *gorm.DB, data PartData, companies map[string]*models.Company) (bool, error) {
	company, err := lookupCompany(companies, data.Company)
	if err != nil {
		return false, err
	}
	if data.Quantity < 0 || data.MinimumQuantity < 0 || data.UnitPrice < 0 {
		return false, errors.New("quantities and prices must not be negative")
	}

	var existing models.Part
	err = tx.Where("company_id = ? AND part_number = ?", company.ID, data.PartNumber).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query part: %w", err)
	}

	part := models.Part{
		CompanyID:         company.ID,
		PartNumber:        data.PartNumber,
		Name:              data.Name,
		Category:          data.Category,
		Quantity:          data.Quantity,
		MinimumQuantity:   data.MinimumQuantity,
		UnitPrice:         data.UnitPrice,
		PreviousUnitPrice: data.UnitPrice,
		Supplier:          data.Supplier,
		Location:          data.Location,
	}
	if err := tx.Create(&part).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createTutorial(tx *gorm.DB, data TutorialData) (bool, error) {
	var existing models.TutorialVideo
	err := tx.Where("title = ? AND video_url = ?", data.Title, data.VideoURL).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query tutorial: %w", err)
	}

	video := models.TutorialVideo{
		Title:       data.Title,
		Description: data.Description,
		VideoURL:    data.VideoURL,
		Category:    data.Category,
		SortOrder:   data.SortOrder,
		Published:   data.Published,
	}
	if err := tx.Create(&video).Error; err != nil {
		return false, err
	}
	return true, nil
}
