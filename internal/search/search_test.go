package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ID       string
	Vendor   string
	BankName string
	Provider string
}

func fields(r record) []string {
	return []string{r.ID, r.Vendor, r.BankName, r.Provider}
}

func TestFilter(t *testing.T) {
	records := []record{
		{ID: "wd-1001", Vendor: "Happy Mart", BankName: "BDO Unibank", Provider: "gcash"},
		{ID: "wd-1002", Vendor: "Lucky Shop", BankName: "Metrobank", Provider: "maya"},
		{ID: "wd-1003", Vendor: "Bargain Box", BankName: "BPI", Provider: "gcash"},
	}

	cases := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query returns everything", query: "", wantIDs: []string{"wd-1001", "wd-1002", "wd-1003"}},
		{name: "blank query returns everything", query: "   ", wantIDs: []string{"wd-1001", "wd-1002", "wd-1003"}},
		{name: "case insensitive vendor match", query: "HAPPY", wantIDs: []string{"wd-1001"}},
		{name: "bank substring", query: "bank", wantIDs: []string{"wd-1001", "wd-1002"}},
		{name: "provider", query: "gcash", wantIDs: []string{"wd-1001", "wd-1003"}},
		{name: "record id", query: "wd-1002", wantIDs: []string{"wd-1002"}},
		{name: "no matches", query: "zzz", wantIDs: []string{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Filter(records, c.query, fields)
			gotIDs := make([]string, 0, len(got))
			for _, r := range got {
				gotIDs = append(gotIDs, r.ID)
			}
			assert.Equal(t, c.wantIDs, gotIDs)
		})
	}
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("", "anything"))
	assert.True(t, Match("uni", "BDO Unibank"))
	assert.False(t, Match("uni"))
}
