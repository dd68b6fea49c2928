package ports

// Metrics records facade write outcomes. Entity labels are the domain.Kind*
// constants. Implementations must be safe for concurrent use.
type Metrics interface {
	EntityCreated(entity string)
	EntityUpdated(entity string)
	// WriteRejected counts a create or update refused by a field or reference rule.
	WriteRejected(entity, field string)
	ReviewDeleted()
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) EntityCreated(string)         {}
func (NopMetrics) EntityUpdated(string)         {}
func (NopMetrics) WriteRejected(string, string) {}
func (NopMetrics) ReviewDeleted()               {}
