// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage provides the concrete storage engines behind the
// built-in models: a contiguous [List], a row-major 2-D [Table],
// and a [Tree] of nodes addressed by stable ids.
//
// The engines do not check preconditions or emit notifications;
// that is done by the models in package models that wrap them.
// Move destinations are gap positions in pre-move coordinates.
package storage
