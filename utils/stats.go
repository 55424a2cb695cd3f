package utils

import "time"

// populationSmoothing is the weight of the newest sample in AveragePopulation
const populationSmoothing = 0.1

// Stats summarises a run of generations
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	StartTime            time.Time

	samples int
}

// NewStats starts the run clock
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the population reached at generation and how long the step took
func (s *Stats) Update(generation, population int, stepTime time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if stepTime > 0 {
		s.GenerationsPerSecond = float64(time.Second) / float64(stepTime)
	}

	// The first sample seeds the exponential moving average, even when it is zero
	if s.samples == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation += populationSmoothing * (float64(population) - s.AveragePopulation)
	}
	s.samples++
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
