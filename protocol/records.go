package protocol

// Records is a batch of TLV records. The audit log stores one batch per
// entry value; keeping the parts as separate blobs until the final write
// avoids intermediate copies.
type Records [][]byte

func (recs Records) TotalLen() (total int64) {
	for _, r := range recs {
		total += int64(len(r))
	}
	return
}

// Join flattens the batch into one contiguous value.
func (recs Records) Join() []byte {
	ret := make([]byte, 0, recs.TotalLen())
	for _, r := range recs {
		ret = append(ret, r...)
	}
	return ret
}
