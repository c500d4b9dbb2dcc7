package schedule

import "fmt"

// GenerateSlots returns every candidate start time between openMin and
// closeMin (minutes of day) stepping by durationMin, as "HH:mm" labels.
// The last slot must end at or before closing. Empty for a non-positive
// duration or when the shop is never open.
func GenerateSlots(openMin, closeMin, durationMin int) []string {
	if durationMin <= 0 || openMin >= closeMin {
		return nil
	}

	var slots []string
	for cur := openMin; cur+durationMin <= closeMin; cur += durationMin {
		slots = append(slots, ToLabel(cur))
	}
	return slots
}

func ToLabel(minutesOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minutesOfDay/60, minutesOfDay%60)
}

func ToMinutes(label string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(label, "%d:%d", &h, &m); err != nil {
		return 0, err
	}
	return h*60 + m, nil
}
