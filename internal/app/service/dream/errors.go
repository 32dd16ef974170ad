package dream

import "errors"

var (
	ErrDreamNotFound    = errors.New("Dream not found")
	ErrReportNotFound   = errors.New("Report not found")
	ErrReferralNotFound = errors.New("Blessing code not found")
)
