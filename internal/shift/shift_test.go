package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve_CycleFromAnchor(t *testing.T) {
	// Anchor 2024-01-01, offset 0: dayIndex 0..5 harus P,PM,M,OFF,OFF,P.
	want := []Code{CodeP, CodePM, CodeM, CodeOff, CodeOff, CodeP}
	for i, expected := range want {
		got, err := Resolve(date(2024, time.January, 1+i), 0)
		assert.NoError(t, err)
		assert.Equal(t, expected, got, "dayIndex %d", i)
	}
}

func TestResolve_Periodic(t *testing.T) {
	// resolve(date) == resolve(date + 5 hari) untuk semua offset.
	base := date(2025, time.March, 14)
	for offset := 0; offset <= 4; offset++ {
		a, err := Resolve(base, offset)
		assert.NoError(t, err)
		b, err := Resolve(base.AddDate(0, 0, 5), offset)
		assert.NoError(t, err)
		assert.Equal(t, a, b, "offset %d", offset)
	}
}

func TestResolve_OffsetShiftsPhase(t *testing.T) {
	// Offset 1 pada anchor harus sama dengan offset 0 sehari kemudian.
	a, err := Resolve(date(2024, time.January, 1), 1)
	assert.NoError(t, err)
	assert.Equal(t, CodePM, a)
}

func TestResolve_BeforeAnchor(t *testing.T) {
	// Rotasi harus kontinu mundur melewati anchor.
	got, err := Resolve(date(2023, time.December, 31), 0)
	assert.NoError(t, err)
	assert.Equal(t, CodeOff, got)

	got, err = Resolve(date(2023, time.December, 29), 0)
	assert.NoError(t, err)
	assert.Equal(t, CodeM, got)
}

func TestResolve_ContinuousAcrossMonthBoundary(t *testing.T) {
	jan31, err := Resolve(date(2024, time.January, 31), 0)
	assert.NoError(t, err)
	feb5, err := Resolve(date(2024, time.February, 5), 0)
	assert.NoError(t, err)
	assert.Equal(t, jan31, feb5)
}

func TestResolve_InvalidOffsetRejected(t *testing.T) {
	for _, offset := range []int{-1, 5, 42} {
		_, err := Resolve(date(2024, time.January, 1), offset)
		assert.Error(t, err, "offset %d", offset)
	}
}

func TestScheduledWindow(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)
	day := date(2024, time.June, 10)

	t.Run("shift P", func(t *testing.T) {
		start, end, err := ScheduledWindow(day, CodeP, loc)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.June, 10, 8, 0, 0, 0, loc), start)
		assert.Equal(t, time.Date(2024, time.June, 10, 20, 0, 0, 0, loc), end)
	})

	t.Run("shift PM", func(t *testing.T) {
		start, end, err := ScheduledWindow(day, CodePM, loc)
		assert.NoError(t, err)
		assert.Equal(t, 13, start.Hour())
		assert.Equal(t, 7*time.Hour, end.Sub(start))
	})

	t.Run("shift M berakhir hari berikutnya", func(t *testing.T) {
		start, end, err := ScheduledWindow(day, CodeM, loc)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.June, 10, 20, 0, 0, 0, loc), start)
		assert.Equal(t, time.Date(2024, time.June, 11, 8, 0, 0, 0, loc), end)
	})

	t.Run("OFF tidak punya jadwal", func(t *testing.T) {
		_, _, err := ScheduledWindow(day, CodeOff, loc)
		assert.Error(t, err)
	})

	t.Run("kode tidak dikenal ditolak", func(t *testing.T) {
		_, _, err := ScheduledWindow(day, Code("X"), loc)
		assert.Error(t, err)
	})
}

func TestCodeValid(t *testing.T) {
	assert.True(t, CodeP.Valid())
	assert.True(t, CodeOff.Valid())
	assert.False(t, Code("SIANG").Valid())
}
