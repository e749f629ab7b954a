package domain

import "protoparts/internal/domain/filter"

// Classification field names.
const (
	FieldOutletCode        = "outletCode"
	FieldOutletTitle       = "outletTitle"
	FieldProductGroupCode  = "productGroupCode"
	FieldProductGroupTitle = "productGroupTitle"
	FieldLocationCode      = "locationCode"
	FieldLocationTitle     = "locationTitle"
	FieldGateLevelCode     = "gateLevelCode"
	FieldGateLevelTitle    = "gateLevelTitle"
	FieldEvidenceYearCode  = "evidenceYearCode"
	FieldEvidenceYear      = "evidenceYearTitle"
	FieldCustomer          = "customer"
	FieldProject           = "project"
	FieldProjectNumber     = "projectNumber"
)

// Classification is the set of catalog codes shared by prototype sets and packages.
type Classification struct {
	OutletCode        string `db:"outlet_code" json:"outletCode" validate:"required,len=2"`
	OutletTitle       string `db:"outlet_title" json:"outletTitle" validate:"required,max=100"`
	ProductGroupCode  string `db:"product_group_code" json:"productGroupCode" validate:"required,len=2"`
	ProductGroupTitle string `db:"product_group_title" json:"productGroupTitle" validate:"required,max=100"`
	LocationCode      string `db:"location_code" json:"locationCode" validate:"required,len=2"`
	LocationTitle     string `db:"location_title" json:"locationTitle" validate:"required,max=100"`
	GateLevelCode     string `db:"gate_level_code" json:"gateLevelCode" validate:"required,len=2"`
	GateLevelTitle    string `db:"gate_level_title" json:"gateLevelTitle" validate:"required,max=100"`
	EvidenceYearCode  string `db:"evidence_year_code" json:"evidenceYearCode" validate:"required,len=2,numeric"`
	EvidenceYearTitle int    `db:"evidence_year_title" json:"evidenceYearTitle" validate:"gte=2000,lte=2099"`
	Customer          string `db:"customer" json:"customer" validate:"max=100"`
	Project           string `db:"project" json:"project" validate:"required,max=100"`
	ProjectNumber     string `db:"project_number" json:"projectNumber" validate:"max=50"`
}

// ClassificationQuery holds the classification list filters.
type ClassificationQuery struct {
	OutletCodes            []string `form:"outletCodes" validate:"omitempty,dive,required"`
	OutletTitles           []string `form:"outletTitles" validate:"omitempty,dive,required"`
	ProductGroupCodes      []string `form:"productGroupCodes" validate:"omitempty,dive,required"`
	ProductGroupTitles     []string `form:"productGroupTitles" validate:"omitempty,dive,required"`
	LocationCodes          []string `form:"locationCodes" validate:"omitempty,dive,required"`
	LocationTitles         []string `form:"locationTitles" validate:"omitempty,dive,required"`
	GateLevelCodes         []string `form:"gateLevelCodes" validate:"omitempty,dive,required"`
	GateLevelTitles        []string `form:"gateLevelTitles" validate:"omitempty,dive,required"`
	EvidenceYearCodes      []string `form:"evidenceYearCodes" validate:"omitempty,dive,required"`
	EvidenceYearLowerLimit *int     `form:"evidenceYearLowerLimit"`
	EvidenceYearUpperLimit *int     `form:"evidenceYearUpperLimit"`
	Customers              []string `form:"customers" validate:"omitempty,dive,required"`
	Projects               []string `form:"projects" validate:"omitempty,dive,required"`
	ProjectNumbers         []string `form:"projectNumbers" validate:"omitempty,dive,required"`
}

// Criteria returns the classification restrictions.
func (q ClassificationQuery) Criteria() []filter.Criterion {
	return []filter.Criterion{
		filter.In(FieldOutletCode, q.OutletCodes),
		filter.In(FieldOutletTitle, q.OutletTitles),
		filter.In(FieldProductGroupCode, q.ProductGroupCodes),
		filter.In(FieldProductGroupTitle, q.ProductGroupTitles),
		filter.In(FieldLocationCode, q.LocationCodes),
		filter.In(FieldLocationTitle, q.LocationTitles),
		filter.In(FieldGateLevelCode, q.GateLevelCodes),
		filter.In(FieldGateLevelTitle, q.GateLevelTitles),
		filter.In(FieldEvidenceYearCode, q.EvidenceYearCodes),
		filter.AtLeast(FieldEvidenceYear, q.EvidenceYearLowerLimit),
		filter.AtMost(FieldEvidenceYear, q.EvidenceYearUpperLimit),
		filter.In(FieldCustomer, q.Customers),
		filter.In(FieldProject, q.Projects),
		filter.In(FieldProjectNumber, q.ProjectNumbers),
	}
}
