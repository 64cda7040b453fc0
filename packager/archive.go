package packager

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/visual-utils/lambda-deploy-and-promote/writer"
)

// ArchiveSummary describes a finished artifact zip. SHA256Base64 is the
// encoding the function service reports as CodeSha256.
type ArchiveSummary struct {
	Size         int
	SHA256       string
	SHA256Base64 string
}

// ZipDirectory archives the contents of dir into target. Entry names
// are relative to dir, so the handler file sits at the archive root.
func ZipDirectory(dir, target string) (ArchiveSummary, error) {
	targetFile, err := os.Create(target)
	if err != nil {
		return ArchiveSummary{}, errors.Wrapf(err, "could not create archive '%s'", target)
	}
	defer targetFile.Close()

	hasher := sha256.New()
	countWriter := writer.NewCountWriter(io.MultiWriter(targetFile, hasher))
	zipWriter := zip.NewWriter(countWriter)

	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		relativePath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(relativePath)
		header.Method = zip.Deflate

		entryWriter, err := zipWriter.CreateHeader(header)
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(entryWriter, file)
		return err
	})
	if err != nil {
		return ArchiveSummary{}, errors.Wrapf(err, "could not archive '%s'", dir)
	}

	if err := zipWriter.Close(); err != nil {
		return ArchiveSummary{}, errors.Wrapf(err, "could not close archive '%s'", target)
	}

	if err := targetFile.Close(); err != nil {
		return ArchiveSummary{}, errors.Wrapf(err, "could not close archive '%s'", target)
	}

	checksum := hasher.Sum(nil)

	return ArchiveSummary{
		Size:         countWriter.Count(),
		SHA256:       hex.EncodeToString(checksum),
		SHA256Base64: base64.StdEncoding.EncodeToString(checksum),
	}, nil
}
