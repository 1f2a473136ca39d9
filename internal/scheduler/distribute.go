package scheduler

// DayBucket is one study day: an ordinal day number, the tasks assigned
// to it in generation order, and their summed duration. Buckets are a
// derived view — recompute them whenever the task list or the budget
// changes.
type DayBucket struct {
	Day          int
	Tasks        []Task
	TotalMinutes int
}

// Distribute packs tasks into day buckets with a single greedy pass in
// generation order. A task that would push the current day past
// dailyMinutes starts a new day, unless the current day is still empty:
// an oversized task is placed alone and allowed to overflow rather than
// split. An empty task list yields no buckets.
//
// The packing is deterministic: identical inputs always produce identical
// bucket assignments.
func Distribute(tasks []Task, dailyMinutes int) []DayBucket {
	if len(tasks) == 0 {
		return nil
	}
	if dailyMinutes <= 0 {
		dailyMinutes = DefaultDailyMinutes
	}

	var buckets []DayBucket
	current := DayBucket{Day: 1}

	for _, t := range tasks {
		if len(current.Tasks) > 0 && current.TotalMinutes+t.Minutes > dailyMinutes {
			buckets = append(buckets, current)
			current = DayBucket{Day: current.Day + 1}
		}
		current.Tasks = append(current.Tasks, t)
		current.TotalMinutes += t.Minutes
	}
	buckets = append(buckets, current)

	return buckets
}

// DefaultDailyHours is the fallback daily commitment when the learner
// has not set one.
const DefaultDailyHours = 2

// DefaultDailyMinutes is DefaultDailyHours in scheduler units.
const DefaultDailyMinutes = DefaultDailyHours * 60

// TotalMinutes sums the durations of a task list.
func TotalMinutes(tasks []Task) int {
	total := 0
	for _, t := range tasks {
		total += t.Minutes
	}
	return total
}
