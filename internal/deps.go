package internal

import (
	"cloudpix/files-api/aws"
	"cloudpix/files-api/internal/service"
	"cloudpix/files-api/pkg/security"

	"gorm.io/gorm"
)

// Deps holds the process-wide handles. Everything is constructed once at
// startup and passed into handlers explicitly.
type Deps struct {
	DB         *gorm.DB
	Argon      *security.ArgonHash
	S3         *aws.S3Client
	Files      *service.Files
	ShareLinks *service.ShareLinks
}
