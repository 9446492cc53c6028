package response

import "github.com/charity-events/fundraiser-api/internal/domain"

type DinnerDetail struct {
	domain.Dinner
	PercentRaised  float64 `json:"percent_raised"`
	SeatsAvailable int     `json:"seats_available"`
}

func NewDinnerDetail(d domain.Dinner) DinnerDetail {
	return DinnerDetail{
		Dinner:         d,
		PercentRaised:  d.PercentRaised(),
		SeatsAvailable: d.SeatsAvailable(),
	}
}

type TableDetail struct {
	domain.Table
	SeatsAvailable int `json:"seats_available"`
}

func NewTableDetails(tables []domain.Table, seatsPerTable int) []TableDetail {
	out := make([]TableDetail, 0, len(tables))
	for _, t := range tables {
		out = append(out, TableDetail{Table: t, SeatsAvailable: t.SeatsAvailable(seatsPerTable)})
	}
	return out
}

type RaffleDetail struct {
	domain.Raffle
	PercentRaised    float64 `json:"percent_raised"`
	TicketsAvailable int     `json:"tickets_available"`
}

func NewRaffleDetail(r domain.Raffle) RaffleDetail {
	return RaffleDetail{
		Raffle:           r,
		PercentRaised:    r.PercentRaised(),
		TicketsAvailable: r.TicketsAvailable(),
	}
}

type WalkDetail struct {
	domain.Walk
	PercentRaised  float64 `json:"percent_raised"`
	SlotsAvailable int     `json:"slots_available"`
}

func NewWalkDetail(w domain.Walk) WalkDetail {
	return WalkDetail{
		Walk:           w,
		PercentRaised:  w.PercentRaised(),
		SlotsAvailable: w.SlotsAvailable(),
	}
}

type ConcertDetail struct {
	domain.Concert
	PercentRaised    float64               `json:"percent_raised"`
	EntriesAvailable int                   `json:"entries_available"`
	OccupiedSeats    []domain.SeatPosition `json:"occupied_seats,omitempty"`
}

func NewConcertDetail(c domain.Concert, occupied []domain.SeatPosition) ConcertDetail {
	return ConcertDetail{
		Concert:          c,
		PercentRaised:    c.PercentRaised(),
		EntriesAvailable: c.EntriesAvailable(),
		OccupiedSeats:    occupied,
	}
}

func NewDinnerDetails(ds []domain.Dinner) []DinnerDetail {
	out := make([]DinnerDetail, 0, len(ds))
	for _, d := range ds {
		out = append(out, NewDinnerDetail(d))
	}
	return out
}

func NewRaffleDetails(rs []domain.Raffle) []RaffleDetail {
	out := make([]RaffleDetail, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewRaffleDetail(r))
	}
	return out
}

func NewWalkDetails(ws []domain.Walk) []WalkDetail {
	out := make([]WalkDetail, 0, len(ws))
	for _, w := range ws {
		out = append(out, NewWalkDetail(w))
	}
	return out
}

func NewConcertDetails(cs []domain.Concert) []ConcertDetail {
	out := make([]ConcertDetail, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewConcertDetail(c, nil))
	}
	return out
}

type Overview struct {
	Dinners  []DinnerDetail  `json:"dinners"`
	Raffles  []RaffleDetail  `json:"raffles"`
	Walks    []WalkDetail    `json:"walks"`
	Concerts []ConcertDetail `json:"concerts"`
}

func NewOverview(o domain.Overview) Overview {
	return Overview{
		Dinners:  NewDinnerDetails(o.Dinners),
		Raffles:  NewRaffleDetails(o.Raffles),
		Walks:    NewWalkDetails(o.Walks),
		Concerts: NewConcertDetails(o.Concerts),
	}
}
