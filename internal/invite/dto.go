package invite

type CreateInviteDTO struct {
	GroupID     string `json:"groupId"`
	InviteeName string `json:"inviteeName"`
}

type RespondDTO struct {
	Accepted bool `json:"accepted"`
}

type InviteResponse struct {
	InviteID    string `json:"inviteId"`
	GroupName   string `json:"groupName"`
	InviterName string `json:"inviterName"`
}
