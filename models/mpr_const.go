package models

type MPRStatus string

const (
	MPRStatusDraft    MPRStatus = "draft"
	MPRStatusPending  MPRStatus = "pending"
	MPRStatusApproved MPRStatus = "approved"
	MPRStatusRejected MPRStatus = "rejected"
	MPRStatusOnHold   MPRStatus = "on_hold"
	MPRStatusClosed   MPRStatus = "closed"
)

var mprStatusHumanName = map[MPRStatus]string{
	MPRStatusDraft:    "Draft",
	MPRStatusPending:  "Pending Approval",
	MPRStatusApproved: "Approved",
	MPRStatusRejected: "Rejected",
	MPRStatusOnHold:   "On Hold",
	MPRStatusClosed:   "Closed",
}

func (s MPRStatus) IsValid() bool {
	_, exist := mprStatusHumanName[s]
	return exist
}

func (s MPRStatus) ToHuman() string {
	if human, exist := mprStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// AllowDecision guards approve and reject.
func (s MPRStatus) AllowDecision() bool {
	return s == MPRStatusPending
}

// AllowSubmit guards submit_for_approval.
func (s MPRStatus) AllowSubmit() bool {
	return s == MPRStatusDraft
}

type MPRPriority string

const (
	MPRPriorityLow    MPRPriority = "low"
	MPRPriorityMedium MPRPriority = "medium"
	MPRPriorityHigh   MPRPriority = "high"
	MPRPriorityUrgent MPRPriority = "urgent"
)

func (p MPRPriority) IsValid() bool {
	switch p {
	case MPRPriorityLow, MPRPriorityMedium, MPRPriorityHigh, MPRPriorityUrgent:
		return true
	}
	return false
}

type OrgUnitType string

const (
	OrgUnitDepartment OrgUnitType = "department"
	OrgUnitDivision   OrgUnitType = "division"
	OrgUnitUnit       OrgUnitType = "unit"
)

func (t OrgUnitType) IsValid() bool {
	switch t {
	case OrgUnitDepartment, OrgUnitDivision, OrgUnitUnit:
		return true
	}
	return false
}
