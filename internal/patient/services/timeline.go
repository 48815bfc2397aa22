package services

import (
	"sort"
	"time"

	"github.com/c14220110/hms-console/internal/common/display"
	commonModels "github.com/c14220110/hms-console/internal/common/models"
	"github.com/c14220110/hms-console/internal/patient/models"
)

const timelineBaseClass = "slds-timeline__item_expandable "

var timelineClass = map[string]string{
	models.TypeAppointment:   "timeline-item-appointment",
	models.TypeMedicalRecord: "timeline-item-medical",
	models.TypeBilling:       "timeline-item-billing",
}

// Decorate fills the display fields of a timeline item. An undated item gets
// no relative date.
func Decorate(item models.TimelineItem, now time.Time) models.TimelineItem {
	item.CSSClass = timelineBaseClass + timelineClass[item.Type]
	if item.ItemDate != nil {
		item.RelativeDate = display.RelativeDate(item.ItemDate.Time, now)
	}
	item.IsAppointment = item.Type == models.TypeAppointment
	item.IsMedical = item.Type == models.TypeMedicalRecord
	item.IsBilling = item.Type == models.TypeBilling
	return item
}

// appointmentItems turns appointments into timeline entries, newest first.
// An appointment without a date is placed by its creation date.
func appointmentItems(appts []commonModels.Appointment) []models.TimelineItem {
	items := make([]models.TimelineItem, 0, len(appts))
	for _, a := range appts {
		date := a.DateTime
		if date == nil {
			date = a.CreatedDate
		}
		title := "Appointment"
		if a.Doctor != nil {
			title += " with Dr. " + a.Doctor.FullName()
		}
		if a.Status != "" {
			title += " (" + string(a.Status) + ")"
		}
		items = append(items, models.TimelineItem{
			ID:          a.ID,
			Type:        models.TypeAppointment,
			Title:       title,
			Description: a.Notes,
			Icon:        "standard:event",
			ItemDate:    date,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ItemDate.TimeOrZero().After(items[j].ItemDate.TimeOrZero())
	})
	return items
}
