package action

import (
	"fmt"
	"strings"
	"time"

	"packy/internal/model"
	"packy/internal/store"
)

const dateLayout = "2006-01-02"

// SetTrip updates the trip name and dates. Dates are calendar dates,
// inclusive on both ends. Blank fields keep their current values: a blank
// name preserves the name, and blank dates preserve the dates (and the day
// count with them). CalculatedDays is recomputed here, the only place
// either date changes.
func SetTrip(s *store.Store, name, departureDate, returnDate string) (model.Trip, error) {
	st := s.State()
	if st.List == nil {
		return model.Trip{}, ErrNoList
	}
	cur := st.List.Trip

	name = strings.TrimSpace(name)
	if name == "" {
		name = cur.Name
	}
	departureDate = strings.TrimSpace(departureDate)
	returnDate = strings.TrimSpace(returnDate)
	if departureDate == "" && returnDate == "" {
		departureDate = cur.DepartureDate
		returnDate = cur.ReturnDate
	}

	trip, err := buildTrip(name, departureDate, returnDate)
	if err != nil {
		return model.Trip{}, err
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		st.List.Trip = trip
		return st
	})
	return trip, nil
}

func buildTrip(name, departureDate, returnDate string) (model.Trip, error) {
	trip := model.Trip{
		Name:           strings.TrimSpace(name),
		DepartureDate:  strings.TrimSpace(departureDate),
		ReturnDate:     strings.TrimSpace(returnDate),
		CalculatedDays: 1,
	}
	days, err := calculateDays(trip.DepartureDate, trip.ReturnDate)
	if err != nil {
		return model.Trip{}, err
	}
	trip.CalculatedDays = days
	return trip, nil
}

// calculateDays returns the inclusive day count between two dates, never
// less than 1.
func calculateDays(departureDate, returnDate string) (int, error) {
	if departureDate == "" || returnDate == "" {
		return 1, nil
	}
	dep, err := time.Parse(dateLayout, departureDate)
	if err != nil {
		return 0, fmt.Errorf("invalid departure date %q: expected YYYY-MM-DD", departureDate)
	}
	ret, err := time.Parse(dateLayout, returnDate)
	if err != nil {
		return 0, fmt.Errorf("invalid return date %q: expected YYYY-MM-DD", returnDate)
	}
	days := int(ret.Sub(dep).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days, nil
}
