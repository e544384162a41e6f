package rest

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/constants"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/executor"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// ListUsageEventsQueryParams holds query parameters for GET /usage-events
type ListUsageEventsQueryParams struct {
	AccountID       string     `form:"account_id"`
	CommunityID     string     `form:"community_id"`
	Since           *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Until           *time.Time `form:"until" time_format:"2006-01-02T15:04:05Z07:00"`
	GuardFailedOnly bool       `form:"guard_failed"`

	// Pagination
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseListUsageEventsQuery parses query parameters for GET /usage-events
func ParseListUsageEventsQuery(c *gin.Context) (*executor.UsageEventQuery, error) {
	var params ListUsageEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative")
	}
	if params.Since != nil && params.Until != nil && params.Until.Before(*params.Since) {
		return nil, fmt.Errorf("until must not be before since")
	}

	query := &executor.UsageEventQuery{
		Since:           params.Since,
		Until:           params.Until,
		GuardFailedOnly: params.GuardFailedOnly,
		Limit:           min(params.Limit, constants.MAX_PAGE_SIZE),
		Offset:          params.Offset,
	}
	if params.AccountID != "" {
		query.AccountID = &params.AccountID
	}
	if params.CommunityID != "" {
		query.CommunityID = &params.CommunityID
	}

	return query, nil
}

// ListDLQEntriesQueryParams holds query parameters for GET /dlq
type ListDLQEntriesQueryParams struct {
	Status        string `form:"status"`
	OperationType string `form:"operation_type"`

	// Pagination
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseListDLQEntriesQuery parses query parameters for GET /dlq
func ParseListDLQEntriesQuery(c *gin.Context) (*executor.DLQQuery, error) {
	var params ListDLQEntriesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative")
	}

	query := &executor.DLQQuery{
		Limit:  min(params.Limit, constants.MAX_PAGE_SIZE),
		Offset: params.Offset,
	}
	if params.Status != "" {
		status := schema.DLQStatus(params.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("unsupported status %q", params.Status)
		}
		query.Status = &status
	}
	if params.OperationType != "" {
		op := schema.DLQOperationType(params.OperationType)
		if !op.Valid() {
			return nil, fmt.Errorf("unsupported operation_type %q", params.OperationType)
		}
		query.OperationType = &op
	}

	return query, nil
}
