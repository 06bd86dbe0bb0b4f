package cm

var reservedProps = map[string]struct{}{
	ChildrenProp:  {},
	ClassProp:     {},
	ClassNameProp: {},
	StyleProp:     {},
	OmitProp:      {},
}

// Forward returns the props that reach the host element. Withheld, in order: reserved names,
// variant keys, marker-prefixed names, and the one-time omissions of this render.
func Forward(props Props, variantKeys, omit []string) Props {
	withheld := make(map[string]struct{}, len(variantKeys)+len(omit))
	for _, k := range variantKeys {
		withheld[k] = struct{}{}
	}
	for _, k := range omit {
		withheld[k] = struct{}{}
	}

	out := make(Props, len(props))
	for k, v := range props {
		if _, ok := reservedProps[k]; ok {
			continue
		}
		if _, ok := withheld[k]; ok {
			continue
		}
		if IsMarker(k) {
			continue
		}
		out[k] = v
	}
	return out
}
