package metrics

// RecordValidationFailure records an input rejected for the given entity kind and field.
func RecordValidationFailure(entity, field string) {
	ValidationFailuresTotal.WithLabelValues(entity, field).Inc()
}

// RecordMutation records a successful construction or mutation.
func RecordMutation(operation string) {
	MutationsTotal.WithLabelValues(operation).Inc()
}

// UpdateRegistrySize sets the size gauges to the current registry counts.
func UpdateRegistrySize(authors, magazines, articles int) {
	AuthorsTotal.Set(float64(authors))
	MagazinesTotal.Set(float64(magazines))
	ArticlesTotal.Set(float64(articles))
}
