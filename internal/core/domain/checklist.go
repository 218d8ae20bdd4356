package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemStatus is the evaluation state of one inspection item.
type ItemStatus string

const (
	StatusNotEvaluated ItemStatus = "not_evaluated"
	StatusOK           ItemStatus = "ok"
	StatusProblem      ItemStatus = "problem"
	// StatusUnconfirmedProblem marks an item the driver started flagging
	// but has not yet confirmed with a description. It must be resolved
	// before the checklist can be submitted.
	StatusUnconfirmedProblem ItemStatus = "unconfirmed_problem"
)

func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusNotEvaluated, StatusOK, StatusProblem, StatusUnconfirmedProblem:
		return true
	}
	return false
}

// Problem records one defect against an inspection item. At most one
// Problem exists per item key in a given checklist.
type Problem struct {
	ItemKey     string   `json:"item_key"`
	Description string   `json:"description"`
	PhotoURLs   []string `json:"photo_urls,omitempty"`
}

// Checklist is one completed (or being completed) pre-trip inspection.
// Items holds one boolean per catalog key, true iff the item was
// confirmed sound.
type Checklist struct {
	ID                    uuid.UUID       `json:"id"`
	Date                  time.Time       `json:"date"`
	DriverName            string          `json:"driver_name"`
	VehicleType           VehicleClass    `json:"vehicle_type"`
	LicensePlate          string          `json:"license_plate"`
	Items                 map[string]bool `json:"items"`
	InitialTemperature    *float64        `json:"initial_temperature"`
	ProgrammedTemperature *float64        `json:"programmed_temperature"`
	ProductTypes          []ProductType   `json:"product_types"`
	Problems              []Problem       `json:"problems"`
	GeneralObservations   string          `json:"general_observations"`
	DeclarationAccepted   bool            `json:"declaration_accepted"`
	CreatedAt             time.Time       `json:"created_at"`
	CompletedAt           time.Time       `json:"completed_at"`
}

// ProblemFor returns the problem recorded against key, or nil.
func (c *Checklist) ProblemFor(key string) *Problem {
	for i := range c.Problems {
		if c.Problems[i].ItemKey == key {
			return &c.Problems[i]
		}
	}
	return nil
}

func (c *Checklist) HasProblems() bool {
	return len(c.Problems) > 0
}

// PhotoCount is the total number of photos across all problems.
func (c *Checklist) PhotoCount() int {
	n := 0
	for _, p := range c.Problems {
		n += len(p.PhotoURLs)
	}
	return n
}

// ItemStatus projects the stored boolean plus problem presence back to
// a status. Combinations not producible by the draft mutator (ok with a
// problem, or not-ok without one) collapse to not_evaluated.
func (c *Checklist) ItemStatus(key string) ItemStatus {
	ok := c.Items[key]
	hasProblem := c.ProblemFor(key) != nil
	switch {
	case ok && !hasProblem:
		return StatusOK
	case !ok && hasProblem:
		return StatusProblem
	default:
		return StatusNotEvaluated
	}
}

// HasProductType reports membership of t in the product-tag set.
func (c *Checklist) HasProductType(t ProductType) bool {
	for _, p := range c.ProductTypes {
		if p == t {
			return true
		}
	}
	return false
}
