package console

import (
	"BikeShare/src/processor"
	"BikeShare/src/utils"
)

func (s *Session) infos(v *processor.View) {
	start := s.now()
	res := processor.Infos(v)
	city := utils.Title(res.City)

	s.out.Line("\tStatistics for %s dataset", city)
	s.out.Line("\tFiltering the %s for %s, %s", city, utils.Title(res.Month), utils.Title(res.Day))
	s.out.Line("\tTotal number of rides in %s dataset: %d rides", city, res.Total)
	s.out.Line("\tRides matching the filters: %d rides", res.Rows)
	s.out.Line("\tThe number of starting stations: %d", res.StartStations)
	s.out.Line("\tThe number of end stations: %d", res.EndStations)
	s.took(start)
}

// heading 报表标题，前后各空一行
func (s *Session) heading(title string) {
	s.out.Printf("\nCalculating %s...\n\n", title)
}

func (s *Session) timeStats(v *processor.View) {
	s.heading("The Most Frequent Times of Travel")
	start := s.now()

	res, err := processor.TimeStats(v)
	if err != nil {
		s.reportError(err)
	} else {
		s.out.Line("\tThe most common month: %s", utils.Title(res.Month))
		s.out.Line("\tThe most common day of the week: %s", utils.Title(res.Weekday))
		s.out.Line("\tThe most common start hour: %s", res.Hour)
	}
	s.took(start)
}

func (s *Session) stationStats(v *processor.View) {
	s.heading("The Most Popular Stations and Trip")
	start := s.now()

	res, err := processor.StationStats(v)
	if err != nil {
		s.reportError(err)
	} else {
		s.out.Line("\tThe most commonly used start station: %s", res.StartStation)
		s.out.Line("\tThe most commonly used end station: %s", res.EndStation)
		s.out.Line("\tThe most frequent street combination: %s, %s", res.TripStart, res.TripEnd)
		s.out.Line("\tWe have a total of : %d trips", res.TripCount)
	}
	s.took(start)
}

func (s *Session) tripDurationStats(v *processor.View) {
	s.heading("Trip Duration")
	start := s.now()

	res, err := processor.TripDurationStats(v)
	if err != nil {
		s.reportError(err)
	} else {
		s.out.Line("\tTotal travel time: %d seconds", res.Total)
		s.out.Line("\tTotal travel time in HMS: %s", res.TotalHMS)
		s.out.Line("\tThe mean travel time: %d seconds", res.Mean)
		s.out.Line("\tThe mean travel time in HMS: %s", res.MeanHMS)
	}
	s.took(start)
}

func (s *Session) userStats(v *processor.View) {
	s.heading("User Stats")
	start := s.now()

	res, err := processor.UserStats(v)
	if err != nil {
		s.reportError(err)
		s.took(start)
		return
	}

	for _, c := range res.UserTypes {
		s.out.Line("\t%s: %d", c.Value, c.Count)
	}

	if res.HasGender {
		s.out.Println()
		for _, c := range res.Genders {
			s.out.Line("\t%s: %d", c.Value, c.Count)
		}
	}

	if res.HasBirthYear {
		s.out.Println()
		if res.BirthYears == 0 {
			s.out.Line("\tNo birth year data for the selected filters.")
		} else {
			s.out.Line("\tEarliest Year of Birth: %d", res.Earliest)
			s.out.Line("\tMost recent Year of Birth: %d", res.MostRecent)
			s.out.Line("\tMost common Year of Birth: %d", res.MostCommon)
		}
	}
	s.took(start)
}
