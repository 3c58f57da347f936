package core

import "strings"

const (
	Housing        Category = "Housing"
	Utilities      Category = "Utilities"
	Transportation Category = "Transportation"
	Insurance      Category = "Insurance"
	Subscriptions  Category = "Subscriptions"
	Healthcare     Category = "Healthcare"
	Debt           Category = "Debt"
	Other          Category = "Other"
)

const (
	Monthly RecurringType = "monthly"
	Yearly  RecurringType = "yearly"
)

const maxNameLength = 200

type (
	Category string

	RecurringType string

	// Bill is a single tracked bill. RecurringType is only meaningful when
	// IsRecurring is set.
	Bill struct {
		ID            string        `json:"id"`
		Name          string        `json:"name"`
		Amount        Money         `json:"amount"`
		DueDate       Date          `json:"dueDate"`
		IsPaid        bool          `json:"isPaid"`
		IsRecurring   bool          `json:"isRecurring"`
		RecurringType RecurringType `json:"recurringType,omitempty"`
		Category      Category      `json:"category"`
		Notes         string        `json:"notes,omitempty"`
	}

	// Draft carries every user-editable field of a Bill. It is the input of
	// both creation and full-field edits.
	Draft struct {
		Name          string
		Amount        Money
		DueDate       Date
		IsPaid        bool
		IsRecurring   bool
		RecurringType RecurringType
		Category      Category
		Notes         string
	}
)

var categories = []Category{
	Housing,
	Utilities,
	Transportation,
	Insurance,
	Subscriptions,
	Healthcare,
	Debt,
	Other,
}

// Categories returns the fixed category list in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory matches s against the fixed category set, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, known := range categories {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", ErrUnknownCategory
}

func (r RecurringType) IsValid() bool {
	return r == Monthly || r == Yearly
}

// ParseRecurringType matches s against monthly/yearly, ignoring case.
func ParseRecurringType(s string) (RecurringType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Monthly):
		return Monthly, nil
	case string(Yearly):
		return Yearly, nil
	default:
		return "", ErrUnknownRecurringType
	}
}

// Validate checks the rules a bill must satisfy before it is accepted.
func (d Draft) Validate() error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return &ValidationError{Field: "name", Err: ErrEmptyName}
	}
	if len(name) > maxNameLength {
		return &ValidationError{Field: "name", Err: ErrNameTooLong}
	}
	if err := d.Amount.Validate(); err != nil {
		return &ValidationError{Field: "amount", Err: err}
	}
	if err := d.DueDate.Validate(); err != nil {
		return &ValidationError{Field: "dueDate", Err: err}
	}
	if !d.Category.IsValid() {
		return &ValidationError{Field: "category", Err: ErrUnknownCategory}
	}
	if d.IsRecurring && d.RecurringType != "" && !d.RecurringType.IsValid() {
		return &ValidationError{Field: "recurringType", Err: ErrUnknownRecurringType}
	}
	return nil
}

// ToBill builds a normalized Bill carrying the given id.
func (d Draft) ToBill(id string) Bill {
	b := Bill{
		ID:            id,
		Name:          strings.TrimSpace(d.Name),
		Amount:        d.Amount,
		DueDate:       d.DueDate,
		IsPaid:        d.IsPaid,
		IsRecurring:   d.IsRecurring,
		RecurringType: d.RecurringType,
		Category:      d.Category,
		Notes:         strings.TrimSpace(d.Notes),
	}
	return b.Normalize()
}

// Draft returns the editable fields of b, the starting point of an edit.
func (b Bill) Draft() Draft {
	return Draft{
		Name:          b.Name,
		Amount:        b.Amount,
		DueDate:       b.DueDate,
		IsPaid:        b.IsPaid,
		IsRecurring:   b.IsRecurring,
		RecurringType: b.RecurringType,
		Category:      b.Category,
		Notes:         b.Notes,
	}
}

// Normalize drops the recurring period of one-time bills, defaults the period
// of recurring ones to monthly and maps unknown categories to Other.
func (b Bill) Normalize() Bill {
	if !b.IsRecurring {
		b.RecurringType = ""
	} else if !b.RecurringType.IsValid() {
		b.RecurringType = Monthly
	}
	if !b.Category.IsValid() {
		if c, err := ParseCategory(string(b.Category)); err == nil {
			b.Category = c
		} else {
			b.Category = Other
		}
	}
	return b
}

// IsDueOn reports whether the bill falls due on the calendar day d.
func (b Bill) IsDueOn(d Date) bool {
	return b.DueDate.SameDay(d)
}
