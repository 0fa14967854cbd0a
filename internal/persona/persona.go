// Package persona holds the customer and advisor domain types together
// with the behavioral reference tables used to drive roleplay: personality
// archetypes, trust levels, and common objection phrases.
package persona

import (
	"strconv"
	"strings"
)

// Customer is a customer profile used to seed prompts and roleplay.
//
// Two shapes exist side by side: the flat fields filled in by the manual
// form path, and the nested AI-generated shape (BasicInfo and the fields
// below it). Every field is optional at this layer; required-field checks
// happen at the caller before a prompt or session is created.
type Customer struct {
	// Flat form fields.
	Name          string `json:"name,omitempty"`
	Age           string `json:"age,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Occupation    string `json:"occupation,omitempty"`
	IncomeRange   string `json:"incomeRange,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`
	Children      string `json:"children,omitempty"`
	ChildrenAges  string `json:"childrenAges,omitempty"`
	Dependents    string `json:"dependents,omitempty"`

	// HNW-only fields, rendered only for the hnw segment.
	NetWorth          string `json:"netWorth,omitempty"`
	BusinessOwner     string `json:"businessOwner,omitempty"`
	BusinessType      string `json:"businessType,omitempty"`
	ExistingInsurance string `json:"existingInsurance,omitempty"`

	// Consultation context.
	MeetingType   string `json:"meetingType,omitempty"`
	MeetingNature string `json:"meetingNature,omitempty"`
	TimeAvailable string `json:"timeAvailable,omitempty"`
	Relationship  string `json:"relationship,omitempty"`
	Referrer      string `json:"referrer,omitempty"`
	Circumstances string `json:"circumstances,omitempty"`
	KnownNeeds    string `json:"knownNeeds,omitempty"`

	// Psychology knobs for the context prompt.
	Personality string `json:"personality,omitempty"`
	TrustLevel  string `json:"trustLevel,omitempty"`

	// AI-generated shape.
	PersonalityType     string         `json:"personalityType,omitempty"`
	BasicInfo           map[string]any `json:"basicInfo,omitempty"`
	BackgroundStory     string         `json:"backgroundStory,omitempty"`
	HiddenNeeds         []string       `json:"hiddenNeeds,omitempty"`
	PotentialObjections []string       `json:"potentialObjections,omitempty"`

	// Meta records how an AI-generated customer was produced.
	Meta *GenerationMeta `json:"_meta,omitempty"`
}

// GenerationMeta stamps an AI-generated customer with its provenance.
type GenerationMeta struct {
	Segment             string `json:"segmentType"`
	FlowType            string `json:"flowType"`
	GeneratedAt         string `json:"generatedAt"`
	OriginalDescription string `json:"originalDescription"`
}

// DisplayName returns the customer's name, preferring the AI-generated
// basicInfo.name over the flat field.
func (c *Customer) DisplayName() string {
	if c.BasicInfo != nil {
		if name, ok := c.BasicInfo["name"].(string); ok && name != "" {
			return name
		}
	}
	if c.Name != "" {
		return c.Name
	}
	return "Khách hàng"
}

// HasName reports whether a usable name is present in either shape.
func (c *Customer) HasName() bool {
	return c.DisplayName() != "Khách hàng"
}

// TrustLevelInt parses the trust level, returning 0 when unset or invalid.
func (c *Customer) TrustLevelInt() int {
	n, err := strconv.Atoi(strings.TrimSpace(c.TrustLevel))
	if err != nil {
		return 0
	}
	return n
}

// Advisor is the advisor (TVV) profile. A single instance exists per user;
// it is overwritten in place on every save.
type Advisor struct {
	Name             string `json:"name"`
	Gender           string `json:"gender,omitempty"`
	Age              string `json:"age,omitempty"`
	ExperienceMonths int    `json:"experienceMonths,omitempty"`
	Personality      string `json:"personality,omitempty"`
	Strengths        string `json:"strengths,omitempty"`
	Improvements     string `json:"improvements,omitempty"`
}

// ExperienceText formats the advisor's experience as "X năm Y tháng",
// omitting zero parts. Empty string when no experience is recorded.
func (a *Advisor) ExperienceText() string {
	if a.ExperienceMonths <= 0 {
		return ""
	}
	years := a.ExperienceMonths / 12
	months := a.ExperienceMonths % 12
	var b strings.Builder
	if years > 0 {
		b.WriteString(strconv.Itoa(years))
		b.WriteString(" năm ")
	}
	if months > 0 {
		b.WriteString(strconv.Itoa(months))
		b.WriteString(" tháng")
	}
	return strings.TrimSpace(b.String())
}
