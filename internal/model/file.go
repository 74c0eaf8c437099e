package model

// FileKind distinguishes folders from regular files.
type FileKind string

const (
	KindFile   FileKind = "file"
	KindFolder FileKind = "folder"
)

// FileType is the file subtype, meaningful only when Kind is KindFile.
type FileType string

const (
	FileDocument FileType = "document"
	FileImage    FileType = "image"
	FileVideo    FileType = "video"
	FileAudio    FileType = "audio"
	FileArchive  FileType = "archive"
	FileOther    FileType = "other"
)

var fileTypeLabels = map[FileType]string{
	FileDocument: "文档",
	FileImage:    "图片",
	FileVideo:    "视频",
	FileAudio:    "音频",
	FileArchive:  "压缩包",
	FileOther:    "其他",
}

func (t FileType) Label() string {
	if label, ok := fileTypeLabels[t]; ok {
		return label
	}
	return LabelUnknown
}

type FileItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kind         FileKind `json:"kind"`
	FileType     FileType `json:"file_type,omitempty"`
	Size         string   `json:"size,omitempty"`
	ModifiedDate string   `json:"modified_date"`
	Owner        string   `json:"owner"`
	Permissions  string   `json:"permissions"`
	Favorite     bool     `json:"favorite"`
	Shared       bool     `json:"shared"`
}
