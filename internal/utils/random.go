package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kunal2217/employee-registration/backend/internal/domain"
)

var firstNames = []string{
	"Aarav", "Ananya", "Arjun", "Diya", "Ishaan", "Kavya", "Nikhil", "Priya",
	"Rahul", "Riya", "Rohan", "Sanya", "Tanvi", "Varun", "Vikram", "Zara",
}

var lastNames = []string{
	"Agarwal", "Bhat", "Chopra", "Desai", "Gupta", "Iyer", "Joshi", "Kapoor",
	"Mehta", "Nair", "Patel", "Reddy", "Sharma", "Singh", "Verma",
}

var departments = []string{"Engineering", "Finance", "Human Resources", "Marketing", "Operations", "Sales"}

var positions = []string{"Analyst", "Associate", "Engineer", "Lead", "Manager", "Specialist"}

var digits = "0123456789"

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func GenerateRandomName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

// GenerateRandomPhone returns exactly 10 digits, first digit non-zero.
func GenerateRandomPhone() string {
	phone := make([]byte, 10)
	phone[0] = digits[rand.Intn(9)+1]
	for i := 1; i < len(phone); i++ {
		phone[i] = digits[rand.Intn(len(digits))]
	}
	return string(phone)
}

func GenerateRandomEmail(name string) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%03d@example.com", local, rand.Intn(1000))
}

func GenerateRandomID(letterLength int, digitLength int) string {
	randomID := make([]rune, letterLength+digitLength)
	for i := range randomID {
		if i < letterLength {
			randomID[i] = letters[rand.Intn(len(letters))]
		} else {
			randomID[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(randomID)
}

// GenerateRandomPercentage returns a score in [40, 100] with two decimals.
func GenerateRandomPercentage() decimal.Decimal {
	return decimal.New(int64(4000+rand.Intn(6001)), -2)
}

func GenerateRandomDateOfBirth() domain.Date {
	year := 1970 + rand.Intn(35)
	month := time.Month(rand.Intn(12) + 1)
	day := rand.Intn(28) + 1
	return domain.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func GenerateRandomUser() *domain.UserRecord {
	name := GenerateRandomName()
	return &domain.UserRecord{
		Name:              name,
		PhoneNumber:       GenerateRandomPhone(),
		Email:             GenerateRandomEmail(name),
		DateOfBirth:       GenerateRandomDateOfBirth(),
		TenthPercentage:   GenerateRandomPercentage(),
		TwelfthPercentage: GenerateRandomPercentage(),
		GraduationMarks:   GenerateRandomPercentage(),
		CompanyName:       "Acme " + departments[rand.Intn(len(departments))],
		Domain:            departments[rand.Intn(len(departments))],
		YearsOfExperience: decimal.New(int64(rand.Intn(301)), -1),
		LastSalary:        decimal.NewFromInt(int64(20000 + rand.Intn(180001))),
	}
}

func GenerateRandomEmployee() *domain.Employee {
	name := GenerateRandomName()
	return &domain.Employee{
		EmployeeID: "EMP-" + GenerateRandomID(2, 4),
		Name:       name,
		Email:      GenerateRandomEmail(name),
		Department: departments[rand.Intn(len(departments))],
		Position:   positions[rand.Intn(len(positions))],
		Salary:     decimal.NewFromInt(int64(30000 + rand.Intn(170001))),
	}
}
