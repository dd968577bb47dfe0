package internal

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

const maxInspectRows = 500

type InspectRow struct {
	Key    string `json:"key"`
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

type RowMapper func(key string, val []byte) InspectRow

// InspectHandler dumps the Badger records under ?prefix= as JSON.
// It is only mounted when the hub runs at debug level.
func InspectHandler(db *badger.DB, defaultPrefix string, mapper RowMapper) http.HandlerFunc {
	if mapper == nil {
		mapper = DefaultMapper
	}
	return func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = defaultPrefix
		}

		rows := make([]InspectRow, 0)
		err := db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)) && len(rows) < maxInspectRows; it.Next() {
				item := it.Item()
				if err := item.Value(func(val []byte) error {
					rows = append(rows, mapper(string(item.Key()), val))
					return nil
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rows)
	}
}

func DefaultMapper(key string, val []byte) InspectRow {
	return InspectRow{Key: key, Type: "RAW", Detail: "Size: " + strconv.Itoa(len(val)) + " bytes"}
}
