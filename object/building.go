package object

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Building info scraped from a residence detail page, uploaded to the Mongo database
type Building struct {
	Id                      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                    string             `json:"name" bson:"name"`
	Description             string             `json:"description" bson:"description"`
	BuiltIn                 string             `json:"built_in" bson:"built_in"`
	EntranceLocation        string             `json:"entrance_location" bson:"entrance_location"`
	ResidentialFloors       string             `json:"residential_floors" bson:"residential_floors"`
	ResidentialApartments   string             `json:"residential_apartments" bson:"residential_apartments"`
	Accessible              string             `json:"accessible" bson:"accessible"`
	AirConditioning         string             `json:"air_conditioning" bson:"air_conditioning"`
	LaundryLocation         string             `json:"laundry_location" bson:"laundry_location"`
	LaundryHours            string             `json:"laundry_hours" bson:"laundry_hours"`
	TrashLocation           string             `json:"trash_location" bson:"trash_location"`
	TrashPickupDays         string             `json:"trash_pickup_days" bson:"trash_pickup_days"`
	RecyclingPickupDays     string             `json:"recycling_pickup_days" bson:"recycling_pickup_days"`
	CableProvider           string             `json:"cable_provider" bson:"cable_provider"`
	FireSafetyPlan          string             `json:"fire_safety_plan" bson:"fire_safety_plan"`
	Superintendent          string             `json:"superintendent" bson:"superintendent"`
	BackupSuperintendent    string             `json:"backup_superintendent" bson:"backup_superintendent"`
	AssetManagementDirector string             `json:"asset_management_director" bson:"asset_management_director"`
	PortfolioManager        string             `json:"portfolio_manager" bson:"portfolio_manager"`
	Amenities               string             `json:"amenities" bson:"amenities"`
	Url                     string             `json:"url" bson:"url"`
}

// Field names one building attribute under both of its file schemas
type Field struct {
	Column string // header in the detail CSV
	Key    string // key in the knowledge-base dump
	get    func(*Building) *string
}

// Value returns the field's value on b
func (f Field) Value(b *Building) string {
	return *f.get(b)
}

// Set assigns the field's value on b
func (f Field) Set(b *Building, value string) {
	*f.get(b) = value
}

// Fields in the fixed order of the CSV header and the knowledge-base blocks
var Fields = []Field{
	{"Building Name", "Building Name", func(b *Building) *string { return &b.Name }},
	{"Description", "Description", func(b *Building) *string { return &b.Description }},
	{"Built in", "Built In", func(b *Building) *string { return &b.BuiltIn }},
	{"Entrance Location", "Entrance Location", func(b *Building) *string { return &b.EntranceLocation }},
	{"Number of Residential Floors", "Residential Floors", func(b *Building) *string { return &b.ResidentialFloors }},
	{"Number of Residential Apartments", "Residential Apartments", func(b *Building) *string { return &b.ResidentialApartments }},
	{"Accessible", "Accessibility", func(b *Building) *string { return &b.Accessible }},
	{"Air Conditioning", "Air Conditioning", func(b *Building) *string { return &b.AirConditioning }},
	{"Laundry Location", "Laundry Location", func(b *Building) *string { return &b.LaundryLocation }},
	{"Laundry Hours", "Laundry Hours", func(b *Building) *string { return &b.LaundryHours }},
	{"Trash & Recycling Disposal Location", "Trash Disposal Location", func(b *Building) *string { return &b.TrashLocation }},
	{"Trash Pick-up Days", "Trash Pick-up Days", func(b *Building) *string { return &b.TrashPickupDays }},
	{"Recycling Pick-up Days", "Recycling Pick-up Days", func(b *Building) *string { return &b.RecyclingPickupDays }},
	{"Cable Provider", "Cable Provider", func(b *Building) *string { return &b.CableProvider }},
	{"Fire Safety Plan", "Fire Safety Plan", func(b *Building) *string { return &b.FireSafetyPlan }},
	{"Superintendent", "Superintendent", func(b *Building) *string { return &b.Superintendent }},
	{"Back-up Superintendent", "Backup Superintendent", func(b *Building) *string { return &b.BackupSuperintendent }},
	{"Director of Asset Management", "Director of Asset Management", func(b *Building) *string { return &b.AssetManagementDirector }},
	{"Portfolio Manager", "Portfolio Manager", func(b *Building) *string { return &b.PortfolioManager }},
	{"Building Amenities", "Building Amenities", func(b *Building) *string { return &b.Amenities }},
	{"URL", "URL", func(b *Building) *string { return &b.Url }},
}

// Columns returns the detail CSV header
func Columns() []string {
	columns := make([]string, len(Fields))
	for i, f := range Fields {
		columns[i] = f.Column
	}
	return columns
}

// Row returns b's values in header order
func (b *Building) Row() []string {
	row := make([]string, len(Fields))
	for i, f := range Fields {
		row[i] = f.Value(b)
	}
	return row
}

// FromColumns builds a building from a column -> value map, absent columns stay empty
func FromColumns(values map[string]string) Building {
	var b Building
	for _, f := range Fields {
		f.Set(&b, values[f.Column])
	}
	return b
}

// FromKeys builds a building from a knowledge-base key -> value map
func FromKeys(values map[string]string) Building {
	var b Building
	for _, f := range Fields {
		f.Set(&b, values[f.Key])
	}
	return b
}
