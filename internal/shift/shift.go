// Package shift memuat tabel shift statis dan resolver rotasi 5 hari.
package shift

import (
	"fmt"
	"time"
)

// Code adalah enum tertutup untuk kode shift harian.
type Code string

const (
	CodeP   Code = "P"   // 08:00 - 20:00
	CodePM  Code = "PM"  // 13:00 - 20:00
	CodeM   Code = "M"   // 20:00 - 08:00 hari berikutnya
	CodeOff Code = "OFF" // hari libur rotasi
)

func (c Code) Valid() bool {
	switch c {
	case CodeP, CodePM, CodeM, CodeOff:
		return true
	default:
		return false
	}
}

// Definition adalah jadwal terjadwal untuk satu kode shift.
type Definition struct {
	Code      Code
	StartHour int
	StartMin  int
	EndHour   int
	EndMin    int
	Duration  time.Duration
	Overnight bool // jam pulang jatuh pada hari kalender berikutnya
}

var definitions = map[Code]Definition{
	CodeP:  {Code: CodeP, StartHour: 8, EndHour: 20, Duration: 12 * time.Hour},
	CodePM: {Code: CodePM, StartHour: 13, EndHour: 20, Duration: 7 * time.Hour},
	CodeM:  {Code: CodeM, StartHour: 20, EndHour: 8, Duration: 12 * time.Hour, Overnight: true},
}

// Lookup mengembalikan definisi untuk kode shift kerja. CodeOff tidak
// punya definisi jam.
func Lookup(code Code) (Definition, bool) {
	def, ok := definitions[code]
	return def, ok
}

// rotationCycle adalah pola rotasi tetap 5 slot.
var rotationCycle = [5]Code{CodeP, CodePM, CodeM, CodeOff, CodeOff}

// rotationAnchor adalah epoch perhitungan dayIndex. Nilai ini load-bearing:
// mengubahnya menggeser seluruh jadwal historis maupun mendatang, jadi
// tidak boleh diganti setelah deploy pertama.
var rotationAnchor = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

const cycleLength = len(rotationCycle)

// DayIndex menghitung indeks hari kalender yang monoton naik terhadap
// anchor, stabil lintas bulan/tahun dan timezone.
func DayIndex(date time.Time) int {
	y, m, d := date.Date()
	utcMidnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(utcMidnight.Sub(rotationAnchor).Hours() / 24)
}

// Resolve menentukan kode shift untuk tanggal tertentu dengan offset
// rotasi per karyawan. Offset di luar [0,4] ditolak, bukan di-clamp.
func Resolve(date time.Time, rotationOffset int) (Code, error) {
	if rotationOffset < 0 || rotationOffset >= cycleLength {
		return "", fmt.Errorf("rotation offset %d out of range [0,%d]", rotationOffset, cycleLength-1)
	}
	idx := DayIndex(date) + rotationOffset
	slot := ((idx % cycleLength) + cycleLength) % cycleLength
	return rotationCycle[slot], nil
}

// ScheduledWindow mewujudkan jam masuk/pulang terjadwal untuk tanggal dan
// kode shift pada timezone kantor. Shift M berakhir di hari berikutnya.
func ScheduledWindow(date time.Time, code Code, loc *time.Location) (start, end time.Time, err error) {
	if loc == nil {
		loc = time.UTC
	}
	if code == CodeOff {
		return time.Time{}, time.Time{}, fmt.Errorf("shift %s has no scheduled window", code)
	}
	def, ok := Lookup(code)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown shift code %q", code)
	}

	y, m, d := date.Date()
	start = time.Date(y, m, d, def.StartHour, def.StartMin, 0, 0, loc)
	endDay := d
	if def.Overnight {
		endDay++
	}
	end = time.Date(y, m, endDay, def.EndHour, def.EndMin, 0, 0, loc)
	return start, end, nil
}
