package storage

import "strconv"

func viewKey(userID int64, view string) string {
	return strconv.FormatInt(userID, 10) + ":" + view
}
