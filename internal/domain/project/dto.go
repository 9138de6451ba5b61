package project

type ProjectResponse struct {
	ID       string `json:"id"`
	BoardID  string `json:"board_id"`
	Name     string `json:"name"`
	JiraID   string `json:"jira_id"`
	IsCapDev bool   `json:"is_cap_dev"`
}
