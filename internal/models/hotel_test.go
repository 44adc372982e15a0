// Package models 模型单元测试
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoomStatus(t *testing.T) {
	tests := []struct {
		input string
		want  RoomStatus
		ok    bool
	}{
		{"FREE", RoomStatusFree, true},
		{"booked", RoomStatusBooked, true},
		{" occupied ", RoomStatusOccupied, true},
		{"MAINTENANCE", RoomStatusMaintenance, true},
		{"BROKEN", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRoomStatus(tt.input)
		assert.Equal(t, tt.ok, ok, "input=%q", tt.input)
		assert.Equal(t, tt.want, got, "input=%q", tt.input)
	}
}

func TestParseReservationStatus(t *testing.T) {
	got, ok := ParseReservationStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, ReservationStatusConfirmed, got)

	_, ok = ParseReservationStatus("PENDING")
	assert.False(t, ok)
}

func TestReservationStatus_IsTerminal(t *testing.T) {
	assert.False(t, ReservationStatusConfirmed.IsTerminal())
	assert.False(t, ReservationStatusCheckedIn.IsTerminal())
	assert.True(t, ReservationStatusCompleted.IsTerminal())
	assert.True(t, ReservationStatusCancelled.IsTerminal())
}

func TestReservation_Nights(t *testing.T) {
	checkin, _ := ParseDate("2026-09-01")
	checkout, _ := ParseDate("2026-09-04")

	r := &Reservation{Checkin: checkin, Checkout: checkout}
	assert.Equal(t, 3, r.Nights())
}
