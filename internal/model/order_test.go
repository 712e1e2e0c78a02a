package model

import "testing"

func TestStatusNext(t *testing.T) {
	tests := []struct {
		from   Status
		want   Status
		wantOK bool
	}{
		{StatusPreparing, StatusReady, true},
		{StatusReady, StatusOnTheWay, true},
		{StatusOnTheWay, StatusDelivered, true},
		{StatusDelivered, "", false},
		{"cancelled", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := tt.from.Next()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%q.Next() = (%q, %v), want (%q, %v)", tt.from, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestOrderAdvance(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusOnTheWay, false},
		{StatusPreparing, StatusDelivered, false},
		{StatusPreparing, StatusPreparing, false},
		{StatusReady, StatusOnTheWay, true},
		{StatusReady, StatusPreparing, false},
		{StatusOnTheWay, StatusDelivered, true},
		{StatusOnTheWay, StatusReady, false},
		{StatusDelivered, StatusPreparing, false},
		{StatusDelivered, StatusDelivered, false},
		{StatusPreparing, "", false},
	}
	for _, tt := range tests {
		o := &Order{Status: tt.from}
		got := o.Advance(tt.to)
		if got != tt.want {
			t.Errorf("Advance(%q -> %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
		wantStatus := tt.from
		if tt.want {
			wantStatus = tt.to
		}
		if o.Status != wantStatus {
			t.Errorf("after Advance(%q -> %q) status = %q, want %q", tt.from, tt.to, o.Status, wantStatus)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusOnTheWay.Label(); got != "On the Way" {
		t.Errorf("Label() = %q", got)
	}
	if !StatusDelivered.Terminal() || StatusOnTheWay.Terminal() {
		t.Error("only delivered is terminal")
	}
	if Status("bogus").Valid() {
		t.Error("bogus status reported valid")
	}
}
