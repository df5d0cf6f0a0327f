package ocr

import "strconv"

// InputOption mutates an OCR input before submission.
type InputOption func(*Input)

// WithLanguages sets traineddata language hints on the input.
func WithLanguages(langs ...string) InputOption {
	return func(in *Input) { in.Languages = append([]string(nil), langs...) }
}

// WithRegion restricts recognition to part of the image. An empty region
// clears the restriction.
func WithRegion(region Region) InputOption {
	return func(in *Input) {
		if region.IsEmpty() {
			in.Region = nil
			return
		}
		in.Region = &region
	}
}

// WithDPI overrides the DPI value on the input.
func WithDPI(dpi int) InputOption {
	return func(in *Input) { in.DPI = dpi }
}

// WithMetadata sets provider-specific variables for the input.
func WithMetadata(metadata map[string]string) InputOption {
	return func(in *Input) {
		if len(metadata) == 0 {
			in.Metadata = nil
			return
		}
		in.Metadata = make(map[string]string, len(metadata))
		for k, v := range metadata {
			in.Metadata[k] = v
		}
	}
}

// WithTesseractPSM sets Tesseract's page segmentation mode.
func WithTesseractPSM(mode int) InputOption {
	return func(in *Input) {
		if in.Metadata == nil {
			in.Metadata = make(map[string]string)
		}
		in.Metadata["tessedit_pageseg_mode"] = strconv.Itoa(mode)
	}
}

// NewInput builds an input for one page image, applying options.
func NewInput(id string, image []byte, format ImageFormat, page int, opts ...InputOption) Input {
	in := Input{ID: id, Image: image, Format: format, Page: page}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}
