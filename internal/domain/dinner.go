package domain

import "fmt"

type Dinner struct {
	Event
	Menu           string  `json:"menu"`
	NumTables      int     `json:"num_tables"`
	SeatsPerTable  int     `json:"seats_per_table"`
	PricePerPerson Cents   `json:"price_per_person"`
	Tables         []Table `json:"tables,omitempty"`
}

type Table struct {
	ID          uint `json:"id"`
	DinnerID    uint `json:"dinner_id"`
	Number      int  `json:"number"`
	Assignments int  `json:"assignments"`
}

func (t Table) SeatsAvailable(seatsPerTable int) int {
	return seatsPerTable - t.Assignments
}

// SeatsAvailable sums the free seats of the loaded tables.
func (d Dinner) SeatsAvailable() int {
	total := 0
	for _, t := range d.Tables {
		if n := t.SeatsAvailable(d.SeatsPerTable); n > 0 {
			total += n
		}
	}
	return total
}

// AvailableTables returns the tables that still have at least one seat.
func (d Dinner) AvailableTables() []Table {
	var tables []Table
	for _, t := range d.Tables {
		if t.SeatsAvailable(d.SeatsPerTable) > 0 {
			tables = append(tables, t)
		}
	}
	return tables
}

// Seat takes one seat at t and credits the dinner with one cover.
func (d *Dinner) Seat(t *Table) error {
	if t.DinnerID != d.ID {
		return fmt.Errorf("%w: table %d does not belong to dinner %d", ErrInvalidInput, t.ID, d.ID)
	}
	if t.SeatsAvailable(d.SeatsPerTable) <= 0 {
		return fmt.Errorf("%w: table %d is full", ErrCapacityExceeded, t.Number)
	}

	t.Assignments++
	d.credit(d.PricePerPerson)
	return nil
}

// NewTables lays out tables numbered 1..NumTables.
func (d Dinner) NewTables() []Table {
	tables := make([]Table, d.NumTables)
	for i := range tables {
		tables[i] = Table{DinnerID: d.ID, Number: i + 1}
	}
	return tables
}
