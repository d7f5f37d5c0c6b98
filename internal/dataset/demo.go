package dataset

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/stlalpha/ansitube/internal/pagination"
)

// Status is the state of a demo order. It renders as an enumerated cell.
type Status int

const (
	StatusPending Status = iota
	StatusShipped
	StatusDelivered
	StatusCancelled
)

// EnumMember returns the member name shown in the table.
func (s Status) EnumMember() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Dimensions is a parcel size. It has no text form of its own.
type Dimensions struct {
	W, H, D int
}

var demoNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

var demoCustomers = []string{
	"Ada Lovelace", "Grace Hopper", "Alan Turing", "Edsger Dijkstra",
	"Barbara Liskov", "Ken Thompson", "Radia Perlman", "Donald Knuth",
}

var demoEpoch = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

// Demo builds n order rows covering every kind of cell value. IDs are
// name-based UUIDs, so the same n always gives the same rows.
func Demo(n int) []pagination.Row {
	rows := make([]pagination.Row, n)
	for i := range rows {
		var shipped any
		status := Status(i % 4)
		if status != StatusPending && status != StatusCancelled {
			shipped = demoEpoch.Add(time.Duration(i)*26*time.Hour + 3*time.Hour)
		}
		rows[i] = pagination.Row{
			{Name: "#", Value: i + 1},
			{Name: "id", Value: uuid.NewSHA1(demoNamespace, []byte(strconv.Itoa(i+1))).String()},
			{Name: "customer", Value: demoCustomers[i%len(demoCustomers)]},
			{Name: "status", Value: status},
			{Name: "total", Value: float64(i*137%1000) + 0.99},
			{Name: "paid", Value: i%3 != 0},
			{Name: "ordered", Value: demoEpoch.Add(time.Duration(i) * 26 * time.Hour)},
			{Name: "shipped", Value: shipped},
			{Name: "parcel", Value: Dimensions{W: 10 + i%5, H: 20, D: 5 + i%3}},
			{Name: "note", Value: fmt.Sprintf("order %d for %s, handle with care and deliver to the front desk", i+1, demoCustomers[i%len(demoCustomers)])},
		}
	}
	return rows
}
