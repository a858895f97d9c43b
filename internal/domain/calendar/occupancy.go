package calendar

import "time"

// Occupancy computa la cantidad de mascotas presentes por fecha en
// [rangeStart, rangeEnd], un registro por día calendario. Una estadía
// cuenta en toda fecha d con CheckIn <= d <= CheckOut: el día de check-out
// la mascota sigue contando como presente.
//
// Implementado como sweep de bordes (mapa de deltas + una pasada
// acumulando) en vez del escaneo O(días × estadías): la vista de admin
// consulta meses enteros.
func Occupancy(stays []StayInterval, rangeStart, rangeEnd time.Time) []OccupancyRecord {
	start := dayOf(rangeStart)
	end := dayOf(rangeEnd)
	if end.Before(start) {
		return nil
	}

	// +1 al entrar, -1 el día siguiente al check-out (inclusivo).
	// Claves por fecha formateada: las estadías pueden venir con otra
	// zona horaria y time.Time no sirve como clave entre zonas.
	const dayKey = "2006-01-02"
	deltas := make(map[string]int)
	carry := 0 // estadías ya abiertas antes del inicio del rango

	startKey := start.Format(dayKey)
	endKey := end.Format(dayKey)

	for _, s := range stays {
		in := dayOf(s.CheckIn).Format(dayKey)
		out := dayOf(s.CheckOut).Format(dayKey)
		if out < in {
			continue // viola el invariante del origen; no cuenta
		}
		if out < startKey || in > endKey {
			continue
		}

		if in < startKey {
			carry++
		} else {
			deltas[in]++
		}

		after := dayOf(s.CheckOut).AddDate(0, 0, 1).Format(dayKey)
		if after <= endKey {
			deltas[after]--
		}
	}

	out := make([]OccupancyRecord, 0, 31)

	count := carry
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		count += deltas[d.Format(dayKey)]
		out = append(out, OccupancyRecord{Date: d, Count: count})
	}
	return out
}

// SummarizeOccupancy devuelve máximo y promedio de ocupación del rango.
func SummarizeOccupancy(records []OccupancyRecord) OccupancyStats {
	if len(records) == 0 {
		return OccupancyStats{}
	}
	max := 0
	sum := 0
	for _, r := range records {
		if r.Count > max {
			max = r.Count
		}
		sum += r.Count
	}
	return OccupancyStats{
		Max: max,
		Avg: float64(sum) / float64(len(records)),
	}
}
