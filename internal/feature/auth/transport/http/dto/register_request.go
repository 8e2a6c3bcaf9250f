package dto

import "github.com/j3-2000/routein-yoga-backend/internal/feature/auth/usecase"

// RegisterReq represents the request body for the register endpoint. Field
// rules are enforced by the usecase validator so every violation is reported,
// not just the first.
type RegisterReq struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PhoneNumber     string `json:"phoneNumber"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	Experience      string `json:"experience"`
	HealthCondition string `json:"healthCondition"`
	BatchTime       string `json:"batchTime"`
	AcceptTerms     bool   `json:"acceptTerms"`
}

// ToInput converts the request body into the usecase input value.
func (r RegisterReq) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		FullName:        r.FullName,
		Email:           r.Email,
		Password:        r.Password,
		PhoneNumber:     r.PhoneNumber,
		Age:             r.Age,
		Gender:          r.Gender,
		Experience:      r.Experience,
		HealthCondition: r.HealthCondition,
		BatchTime:       r.BatchTime,
		AcceptTerms:     r.AcceptTerms,
	}
}
