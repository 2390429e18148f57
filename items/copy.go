// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package items

import (
	"cogentcore.org/modelview/base/errors"
	"github.com/jinzhu/copier"
)

// duplicate returns deep copies of the given payloads,
// made into new payloads from the given fill function.
func duplicate[P any](fill func() P, src []P) ([]P, error) {
	if fill == nil {
		return nil, errors.New("items: duplicate needs a function to make new payloads")
	}
	dups := make([]P, len(src))
	for i, s := range src {
		d := fill()
		if err := copier.CopyWithOption(d, s, copier.Option{DeepCopy: true}); err != nil {
			return nil, err
		}
		dups[i] = d
	}
	return dups, nil
}
