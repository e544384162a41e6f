package constants

const (
	MAX_PAGE_SIZE        = 100
	DEFAULT_PAGE_SIZE    = 20
	MAX_COMMUNITY_IDS    = 100
	MAX_REQUEST_ID_BYTES = 255
)
