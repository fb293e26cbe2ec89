package request

import "testing"

func TestCreateQuoteRequest_ToInput(t *testing.T) {
	in := CreateQuoteRequest{Segment: " drywall ", ProjectSqft: 1200}.ToInput(" p-1 ")
	if in.ProjectID != "p-1" || in.Segment != "drywall" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Options == nil {
		t.Fatalf("expected non-nil options")
	}
}

func TestUpdateVendorServiceRequest_ToPatch(t *testing.T) {
	name := "Acme"
	p := UpdateVendorServiceRequest{CompanyName: &name, CountriesServed: []string{" ca", "", "us"}}.ToPatch()
	if p.CompanyName == nil || *p.CompanyName != "Acme" {
		t.Fatalf("unexpected company name: %+v", p.CompanyName)
	}
	if len(p.CountriesServed) != 2 || p.CountriesServed[0] != "CA" || p.CountriesServed[1] != "US" {
		t.Fatalf("unexpected countries: %v", p.CountriesServed)
	}
	if p.RegionsServed != nil {
		t.Fatalf("absent regions must stay nil, got %v", p.RegionsServed)
	}
}

func TestCreateVendorServiceRequest_ToInput(t *testing.T) {
	in := CreateVendorServiceRequest{CompanyName: " Acme ", Segment: "drywall", RegionsServed: []string{"on"}}.ToInput()
	if in.CompanyName != "Acme" || in.RegionsServed[0] != "ON" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.CountriesServed != nil {
		t.Fatalf("absent countries must stay nil so the default applies")
	}
}
