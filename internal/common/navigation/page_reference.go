package navigation

import "github.com/c14220110/hms-console/internal/common/models"

const (
	TypeObjectPage = "standard__objectPage"
	TypeRecordPage = "standard__recordPage"
)

// PageReference describes a destination for the host platform's navigation
// service.
type PageReference struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
	State      map[string]string `json:"state,omitempty"`
}

// ObjectList points at the "Recent" list view of an object.
func ObjectList(objectAPIName string) PageReference {
	return PageReference{
		Type: TypeObjectPage,
		Attributes: map[string]string{
			"objectApiName": objectAPIName,
			"actionName":    "list",
		},
		State: map[string]string{"filterName": "Recent"},
	}
}

// RecordView points at a record page. objectAPIName may be empty.
func RecordView(recordID, objectAPIName string) PageReference {
	attrs := map[string]string{
		"recordId":   recordID,
		"actionName": "view",
	}
	if objectAPIName != "" {
		attrs["objectApiName"] = objectAPIName
	}
	return PageReference{Type: TypeRecordPage, Attributes: attrs}
}

// ForSection maps a console section to its list page. The dashboard section
// and unknown sections have no destination.
func ForSection(section string) (PageReference, bool) {
	switch section {
	case "patients":
		return ObjectList(models.ObjectPatient), true
	case "appointments":
		return ObjectList(models.ObjectAppointment), true
	case "doctors":
		return ObjectList(models.ObjectDoctor), true
	default:
		return PageReference{}, false
	}
}
