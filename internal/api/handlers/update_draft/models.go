package update_draft

// Draft mutation actions
const (
	ActionSelectService = "selectService"
	ActionSelectDay     = "selectDay"
	ActionSelectTime    = "selectTime"
	ActionAttachPhoto   = "attachPhoto"
	ActionRemovePhoto   = "removePhoto"
	ActionNavigate      = "navigate"
)

// UpdateDraftRequest HTTP request model. Action selects the mutation;
// the remaining fields are read per action.
type UpdateDraftRequest struct {
	Action     string `json:"action"`
	ServiceID  string `json:"serviceId,omitempty"`
	Day        int    `json:"day,omitempty"`
	TimeLabel  string `json:"timeLabel,omitempty"`
	PhotoURL   string `json:"photoUrl,omitempty"`
	PhotoIndex *int   `json:"photoIndex,omitempty"`
	Month      int    `json:"month,omitempty"`
	Year       int    `json:"year,omitempty"`
}
