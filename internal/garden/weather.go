package garden

import "slices"

// WeatherState is the current weather, the fixed-length lookahead queue and
// how long the current weather has lasted.
type WeatherState struct {
	Current    Weather
	Queue      []Weather
	DurationMs float64
}

// randomWeather picks a weather uniformly. With repeat avoidance on, the
// result differs from prev.
func (s *Session) randomWeather(prev Weather) Weather {
	choices := AllWeathers()
	if s.cfg.Weather.AvoidRepeats {
		choices = slices.DeleteFunc(choices, func(w Weather) bool { return w == prev })
	}
	return choices[s.rng.Intn(len(choices))]
}

// initialWeatherQueue fills a queue where each entry is drawn against the one
// before it, starting from the current weather.
func (s *Session) initialWeatherQueue(current Weather) []Weather {
	queue := make([]Weather, 0, s.cfg.Weather.QueueLength)
	prev := current
	for range s.cfg.Weather.QueueLength {
		w := s.randomWeather(prev)
		queue = append(queue, w)
		prev = w
	}
	return queue
}

// AdvanceWeather pops the head of the queue into the current weather and
// appends a fresh entry. The queue length never changes.
func (s *Session) AdvanceWeather() {
	w := &s.weather
	w.Current = w.Queue[0]
	tail := w.Queue[len(w.Queue)-1]
	copy(w.Queue, w.Queue[1:])
	w.Queue[len(w.Queue)-1] = s.randomWeather(tail)
	w.DurationMs = 0

	s.logger.Debug("weather advanced", "current", w.Current, "queue", w.Queue)
	s.bus.WeatherUpdate.Publish(WeatherUpdate{
		Current: w.Current,
		Queue:   slices.Clone(w.Queue),
	})
}

func (s *Session) updateWeather(dt float64) {
	s.weather.DurationMs += dt
	if s.weather.DurationMs >= s.cfg.Weather.DurationMs {
		s.AdvanceWeather()
	}
}

// Weather returns a copy of the weather state.
func (s *Session) Weather() WeatherState {
	w := s.weather
	w.Queue = slices.Clone(w.Queue)
	return w
}

// WaterDecayRate returns the current per-second water decay.
func (s *Session) WaterDecayRate() float64 {
	return s.DecayRate(s.weather.Current, StatusWater, s.difficulty)
}

// LightDecayRate returns the current per-second light decay.
func (s *Session) LightDecayRate() float64 {
	return s.DecayRate(s.weather.Current, StatusLight, s.difficulty)
}
