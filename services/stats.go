package services

// WorkOrderStats holds the status counts shown at the top of the dashboard.
type WorkOrderStats struct {
	Total       int
	Pending     int
	Assigned    int
	InProgress  int
	Completed   int
	NeedsReturn int
}

// CalcStats tallies work orders by status.
func CalcStats(orders []WorkOrder) WorkOrderStats {
	stats := WorkOrderStats{Total: len(orders)}
	for _, wo := range orders {
		switch wo.Status {
		case "pending":
			stats.Pending++
		case "assigned":
			stats.Assigned++
		case "in_progress":
			stats.InProgress++
		case "completed":
			stats.Completed++
		case "needs_return":
			stats.NeedsReturn++
		}
	}
	return stats
}
