package shipping

// Static shipping configuration for the 58 Algerian wilayas. Fees are in DA.
// Unknown region keys quote 0; see Quote.

var homeRates = map[string]int{
	"01 - Adrar": 1500, "02 - Chlef": 700, "03 - Laghouat": 1200, "04 - Oum El Bouaghi": 800,
	"05 - Batna": 700, "06 - Béjaïa": 700, "07 - Biskra": 1100, "08 - Béchar": 2200,
	"09 - Blida": 700, "10 - Bouira": 700, "11 - Tamanrasset": 3500, "12 - Tébessa": 1100,
	"13 - Tlemcen": 900, "14 - Tiaret": 900, "15 - Tizi Ouzou": 700, "16 - Alger": 600,
	"17 - Djelfa": 1000, "18 - Jijel": 700, "19 - Sétif": 550, "20 - Saïda": 900,
	"21 - Skikda": 800, "22 - Sidi Bel Abbès": 900, "23 - Annaba": 700, "24 - Guelma": 850,
	"25 - Constantine": 650, "26 - Médéa": 800, "27 - Mostaganem": 800, "28 - M'Sila": 700,
	"29 - Mascara": 900, "30 - Ouargla": 2000, "31 - Oran": 700, "32 - El Bayadh": 1500,
	"33 - Illizi": 3000, "34 - Bordj Bou Arréridj": 600, "35 - Boumerdès": 700, "36 - El Tarf": 1100,
	"37 - Tindouf": 3500, "38 - Tissemsilt": 900, "39 - El Oued": 1800, "40 - Khenchela": 800,
	"41 - Souk Ahras": 1100, "42 - Tipaza": 700, "43 - Mila": 800, "44 - Aïn Defla": 800,
	"45 - Naâma": 1500, "46 - Aïn Témouchent": 900, "47 - Ghardaïa": 1800, "48 - Relizane": 800,
	"49 - Timimoun": 2500, "50 - Bordj Badji Mokhtar": 3500, "51 - Ouled Djellal": 1200,
	"52 - Béni Abbès": 2500, "53 - In Salah": 3000, "54 - In Guezzam": 3500, "55 - Touggourt": 2000,
	"56 - Djanet": 3500, "57 - El M'Ghair": 1800, "58 - El Meniaa": 1800,
}

var pickupPointRates = map[string]int{
	"01 - Adrar": 600, "02 - Chlef": 600, "03 - Laghouat": 600, "04 - Oum El Bouaghi": 800,
	"05 - Batna": 700, "06 - Béjaïa": 700, "07 - Biskra": 900, "08 - Béchar": 600,
	"09 - Blida": 700, "10 - Bouira": 700, "11 - Tamanrasset": 600, "12 - Tébessa": 850,
	"13 - Tlemcen": 800, "14 - Tiaret": 800, "15 - Tizi Ouzou": 600, "16 - Alger": 600,
	"17 - Djelfa": 600, "18 - Jijel": 700, "19 - Sétif": 550, "20 - Saïda": 900,
	"21 - Skikda": 800, "22 - Sidi Bel Abbès": 800, "23 - Annaba": 600, "24 - Guelma": 850,
	"25 - Constantine": 600, "26 - Médéa": 600, "27 - Mostaganem": 800, "28 - M'Sila": 600,
	"29 - Mascara": 800, "30 - Ouargla": 600, "31 - Oran": 600, "32 - El Bayadh": 600,
	"33 - Illizi": 600, "34 - Bordj Bou Arréridj": 600, "35 - Boumerdès": 700, "36 - El Tarf": 850,
	"37 - Tindouf": 600, "38 - Tissemsilt": 850, "39 - El Oued": 600, "40 - Khenchela": 600,
	"41 - Souk Ahras": 850, "42 - Tipaza": 600, "43 - Mila": 600, "44 - Aïn Defla": 800,
	"45 - Naâma": 600, "46 - Aïn Témouchent": 800, "47 - Ghardaïa": 600, "48 - Relizane": 800,
	"49 - Timimoun": 600, "50 - Bordj Badji Mokhtar": 600, "51 - Ouled Djellal": 900,
	"52 - Béni Abbès": 600, "53 - In Salah": 600, "54 - In Guezzam": 600, "55 - Touggourt": 600,
	"56 - Djanet": 600, "57 - El M'Ghair": 600, "58 - El Meniaa": 600,
}

var localities = map[string][]string{
	"01 - Adrar":             {"Adrar", "Aoulef", "Charouine", "Reggane", "Tamentit", "Tsabit", "Zaouiet Kounta"},
	"02 - Chlef":             {"Chlef", "Abou", "Ain Merane", "Boukadir", "El Karimia", "Oued Fodda", "Tadjena", "Zeboudja"},
	"03 - Laghouat":          {"Laghouat", "Ain Madhi", "Brida", "El Ghicha", "Hassi Delaa", "Ksar El Hirane", "Sidi Makhlouf"},
	"04 - Oum El Bouaghi":    {"Oum El Bouaghi", "Ain Beida", "Ain M'lila", "Behir Chergui", "El Amiria", "Sigus", "Souk Naamane"},
	"05 - Batna":             {"Batna", "Ain Touta", "Arris", "Barika", "Bouzina", "El Madher", "Fesdis", "Ghassira", "Merouana", "N'Gaous", "Ras El Aioun", "Tazoult", "Timgad"},
	"06 - Béjaïa":            {"Béjaïa", "Akbou", "Amizour", "Chemini", "Darguina", "El Kseur", "Ifnayen", "Kherrata", "Seddouk", "Tichy", "Tifra", "Timezrit"},
	"07 - Biskra":            {"Biskra", "Ain Naga", "Bordj Ben Azzouz", "Chetma", "El Kantara", "El Outaya", "M'Chouneche", "Ouled Djellal", "Sidi Okba", "Zeribet El Oued"},
	"08 - Béchar":            {"Béchar", "Abadla", "Beni Ounif", "Kenadsa", "Lahmar", "Mechraa Houari Boumedienne", "Taghit"},
	"09 - Blida":             {"Blida", "Boufarik", "Bougara", "Chebli", "Chiffa", "El Affroun", "Mouzaia", "Oued Alleug", "Souhane"},
	"10 - Bouira":            {"Bouira", "Ain Bessem", "Bechloul", "Bordj Okhriss", "El Adjiba", "Haizer", "Lakhdaria", "M'Chedallah", "Sour El Ghozlane"},
	"11 - Tamanrasset":       {"Tamanrasset", "Abalessa", "Foggaret Ezzaouia", "Idles", "In Amguel", "In Ghar", "In Salah", "Tazrouk"},
	"12 - Tébessa":           {"Tébessa", "Ain Zerga", "Bir El Ater", "Cheria", "El Aouinet", "El Ogla", "Morsott", "Negrine", "Ouenza", "Stah Guentis"},
	"13 - Tlemcen":           {"Tlemcen", "Ain Fezza", "Ain Youcef", "Beni Bahdel", "Beni Snous", "Bensekrane", "El Aricha", "El Fehoul", "Ghazaouet", "Hennaya", "Maghnia", "Mansourah", "Nedroma", "Remchi", "Sebdou", "Zenata"},
	"14 - Tiaret":            {"Tiaret", "Ain Deheb", "Ain Kermes", "Djillali Ben Amar", "Frenda", "Hamadia", "Ksar Chellala", "Mahdia", "Mechraa Safa", "Medroussa", "Oued Lili", "Rahouia", "Sougueur"},
	"15 - Tizi Ouzou":        {"Tizi Ouzou", "Ain El Hammam", "Akbil", "Azeffoun", "Boghni", "Boudjima", "Bouira", "Draa El Mizan", "Iferhounene", "Larbaa Nath Irathen", "Maatkas", "Makouda", "Mizrana", "Ouacif", "Ouadhia", "Tigzirt", "Timizart"},
	"16 - Alger":             {"Alger Centre", "Bab El Oued", "Birkhadem", "Bouzareah", "Dar El Beida", "El Biar", "Hussein Dey", "Kouba", "Mohamed Belouizdad", "Oued Koriche", "Sidi M'Hamed"},
	"17 - Djelfa":            {"Djelfa", "Ain Chouhada", "Ain El Ibel", "Birine", "Charef", "El Idrissia", "Faidh El Botma", "Guernini", "Hassi Bahbah", "Hassi El Euch", "Messaad", "Sidi Ladjel"},
	"18 - Jijel":             {"Jijel", "Ain Taya", "Boucif Ouled Askeur", "Chahna", "El Ancer", "El Milia", "Emir Abdelkader", "Ghebala", "Kaous", "Ouled Rabah", "Taher", "Texenna", "Ziama Mansouriah"},
	"19 - Sétif":             {"Sétif", "Ain Abessa", "Ain Arnat", "Ain Azel", "Ain El Kebira", "Ain Oulmene", "Amoucha", "Babor", "Bazer Sakhra", "Beidha Bordj", "Beni Aziz", "Bir El Arch", "Bouandas", "Bouga", "Djemila", "El Eulma", "Guenzet", "Guidjel", "Hammam Guergour", "Harbil", "Maaouia", "Maoklane", "Salah Bey", "Serdj El Ghoul", "Tachouda", "Tamazirt", "Tella", "Zerdaza"},
	"20 - Saïda":             {"Saïda", "Ain El Hadjar", "Ain Sekhouna", "Doui Thabet", "El Hassasna", "Hounet", "Maamora", "Moulay Larbi", "Ouled Brahim", "Ouled Khaled", "Youb"},
	"21 - Skikda":            {"Skikda", "Ain Kechra", "Azzaba", "Ben Azzouz", "Collo", "El Harrouch", "Oued Zehour", "Ramdane Djamel", "Sidi Mezghiche", "Tamalous", "Zitouna"},
	"22 - Sidi Bel Abbès":    {"Sidi Bel Abbès", "Ain Adden", "Ain Thrid", "Ben Badis", "Marhoum", "Mérine", "Mostefa Ben Brahim", "Moulay Slissen", "Oued Taourira", "Ras El Ma", "Sfisef", "Tafraoui", "Telagh", "Ténira"},
	"23 - Annaba":            {"Annaba", "Ain Berda", "Berrahal", "Chorfa", "El Bouni", "El Hadjar", "Oued El Aneb", "Seraidi", "Treat"},
	"24 - Guelma":            {"Guelma", "Ain Ben Beida", "Ain Reggada", "Bou Hamdane", "Bouati Mahmoud", "Dahoua", "El Fedjoudj Boughrara", "Hammam Debagh", "Hammam N'Bails", "Heliopolis", "Khezaras", "Oued Zenati", "Ras El Agba", "Salaoua Announa", "Zemmoura"},
	"25 - Constantine":       {"Constantine", "Ain Smara", "Didouche Mourad", "El Khroub", "Hamma Bouziane", "Ibn Ziad", "Messaouda", "Zighoud Youcef"},
	"26 - Médéa":             {"Médéa", "Ain Boucif", "Ain Ouksir", "Aziz", "Berrouaghia", "Chahbounia", "Chelif", "Deux Bassins", "Djouab", "El Azizia", "El Omaria", "Guelb El Kebir", "Ksar El Boukhari", "Mihoub", "Oued Harbil", "Ouled Deid", "Ouled Hellal", "Ouled Maaref", "Seghouane", "Si Mahdjoub", "Souagui", "Tablat"},
	"27 - Mostaganem":        {"Mostaganem", "Ain Tedles", "Ain Sidi Cherif", "Bouguirat", "Hassi Mamèche", "Kheir Eddine", "Mesra", "Ouled Boughalem", "Ouled Malah", "Sidi Ali", "Sidi Lakhdar", "Sirat", "Stidia", "Tazgait"},
	"28 - M'Sila":            {"M'Sila", "Ain El Melh", "Ben Srour", "Bou Saada", "Chellal", "Djebel Messaad", "El Hamel", "El Houamed", "Hammam Dhalaâ", "Khoubana", "Maadid", "Magra", "Medjedel", "Ouanougha", "Ouled Derradj", "Ouled Sidi Brahim", "Sidi Aissa", "Sidi Hadjeres", "Sidi M'hamed", "Souamaa", "Tarmount", "Zarzit"},
	"29 - Mascara":           {"Mascara", "Ain Farès", "Ain Fekroun", "Ain Fekan", "Aouf", "El Bordj", "El Gaada", "El Ghomri", "El Keurt", "El Menaouer", "Froha", "Ghriss", "Hachem", "Hacine", "Maoussa", "Mohammadia", "Mocta Douz", "Nesmoth", "Oggaz", "Oued El Abtal", "Oued Taria", "Ras Ain Amirouche", "Sidi Abdeldjebar", "Sidi Kada", "Sidi Zahar", "Tighennif", "Tizi", "Zahana"},
	"30 - Ouargla":           {"Ouargla", "Ain Beida", "El Allia", "El Hadjira", "El Hajeb", "Hassi Ben Abdellah", "Hassi Messaoud", "N'Goussa", "Rouissat", "Sidi Khouiled", "Taibet", "Tebesbest", "Touggourt", "Zaouia El Abidia"},
	"31 - Oran":              {"Oran", "Arzew", "Bethioua", "Bir El Djir", "Es Senia", "Gdyel", "Hassi Bounif", "Marsat El Hadjadj", "Mers El Kebir", "Misserghin", "Oued Tlelat", "Sidi Ben Yebka", "Sidi Chami"},
	"32 - El Bayadh":         {"El Bayadh", "Ain El Orak", "Bougtoub", "Brézina", "Chellala", "El Abiodh Sidi Cheikh", "El Bnoud", "Ghassoul", "Kef El Ahmar", "Rogassa", "Sidi Slimane", "Stitten"},
	"33 - Illizi":            {"Illizi", "Bordj Omar Driss", "Djanet", "Debdeb", "El Borma", "In Amenas", "In Guezzam", "In Salah", "Tin Zaouatine"},
	"34 - Bordj Bou Arréridj": {"Bordj Bou Arréridj", "Ain Taghrout", "Belimour", "Bir Kasdali", "Bordj Ghdir", "Bordj Zemmoura", "Colla", "El Achir", "El Anser", "El Hamadia", "El Main", "El M'hir", "Ghilassa", "Haraza", "Hasnaoua", "Ksour", "Mansourah", "Medjana", "Ouled Brahem", "Ouled Dahmane", "Ouled Sidi Brahim", "Ras El Oued", "Righa", "Taglait", "Teniet En Nasr"},
	"35 - Boumerdès":         {"Boumerdès", "Ammal", "Baghlia", "Bordj Menaiel", "Boudouaou", "Boudouaou El Bahri", "Chabet El Ameur", "Dellys", "Isser", "Khemis El Khechna", "Legata", "Naciria", "Ouled Aissa", "Ouled Fayet", "Si Mustapha", "Souk El Had", "Thénia"},
	"36 - El Tarf":           {"El Tarf", "Ain Kercha", "Ben M'Hidi", "Besbes", "Bouhadjar", "Boutheldja", "Dréan", "El Kala", "Lac des Oiseaux", "Souarekh"},
	"37 - Tindouf":           {"Tindouf", "Aouinet Bel Egrâ", "Fenoughil", "Oum El Assel"},
	"38 - Tissemsilt":        {"Tissemsilt", "Ammari", "Belaassel Bouzegza", "Beni Chaib", "Boucaid", "Bouhatem", "Boukhanafis", "Khemisti", "Lazharia", "Layoune", "Maacem", "Sidi Abed", "Sidi Boutouchent", "Sidi Lantri", "Tamalaht", "Theniet El Had"},
	"39 - El Oued":           {"El Oued", "Bayadha", "Debila", "El Ogla", "Guemar", "Hassi Khelifa", "Magrane", "Mih Ouensa", "Oued Souf", "Reguiba", "Robbah", "Taleb Larbi", "Trifaoui"},
	"40 - Khenchela":         {"Khenchela", "Ain Touila", "Babar", "Bouhmama", "Chechar", "El Hamma", "El Mahmal", "El Mahres", "El Ouenza", "Hammam Essalihine", "Kais", "Ouled Rechache", "Remila", "Yabous"},
	"41 - Souk Ahras":        {"Souk Ahras", "Ain Zana", "Bir Bouhouche", "Heddada", "Khedara", "M'Daourouch", "Mechroha", "Merahna", "Ouled Driss", "Oum El Adhaïm", "Sedrata", "Taoura", "Zouabi"},
	"42 - Tipaza":            {"Tipaza", "Ahmar El Ain", "Bou Ismail", "Cherchell", "Damous", "Fouka", "Gouraya", "Hadjout", "Koléa", "Menaceur", "Nador", "Sidi Amar", "Sidi Ghiles", "Sidi Rached", "Sidi Semiane", "Tipasa"},
	"43 - Mila":              {"Mila", "Ain Beida", "Ain Mellouk", "Chelghoum Laid", "El Ayadi Barbes", "El Barka", "El Eulma", "Ferdjioua", "Grarem Gouga", "Hamala", "Oued Athmania", "Oued Endja", "Oued Seguen", "Rouached", "Sidi Khelifa", "Tassadane Haddada", "Teleghma", "Terrai Bainen", "Yahia Beniguecha"},
	"44 - Aïn Defla":         {"Aïn Defla", "Arib", "Bathia", "Belaas", "Bir Ould Khelifa", "Birbal", "Birhoum", "Boumedfaa", "Djelida", "Djemaa Ouled Cheikh", "El Amra", "El Attaf", "El Hassania", "El Maine", "Hammam Righa", "Hoceinia", "Khemis Miliana", "Miliana", "Oued Chorfa", "Oued Djemaa", "Rouina", "Tarik Ibn Ziad", "Tiberkanine", "Zeddine"},
	"45 - Naâma":             {"Naâma", "Ain Ben Khelil", "Ain Sefra", "Asla", "Djeniene Bourezg", "El Bier", "Makmen Ben Amer", "Mecheria", "Moghrar", "Sfissifa", "Tiout"},
	"46 - Aïn Témouchent":    {"Aïn Témouchent", "Ain Kihel", "Aoubellil", "Beni Saf", "Bouzedjar", "El Amria", "El Malah", "Hammam Bouhadjar", "Hassasna", "Oued Berkeche", "Oued Sabah", "Sidi Ben Adda", "Sidi Boumediene", "Sidi Ourial", "Terga", "Tlemcen"},
	"47 - Ghardaïa":          {"Ghardaïa", "Berriane", "Bounoura", "Dhayet Bendhahoua", "El Atteuf", "El Guerrara", "El Meniaa", "Metlili", "Sebseb", "Zelfana"},
	"48 - Relizane":          {"Relizane", "Ain Rahma", "Ain Tarek", "Ammi Moussa", "Belassel Bouzegza", "Beni Dergoun", "Beni Zentis", "Djidiouia", "El Hamadna", "El Matmar", "El Ouldja", "Had Echkalla", "Hamri", "Kalaa", "Mazouna", "Mendes", "Oued Rhiou", "Oued Sly", "Ramka", "Sidi Khettab", "Sidi Lazreg", "Souk El Had", "Yellel"},
	"49 - Timimoun":          {"Timimoun", "Aougrout", "Bordj Badji Mokhtar", "Charouine", "Ouled Said", "Talmine", "Tinerkouk", "Touggourt"},
	"50 - Bordj Badji Mokhtar": {"Bordj Badji Mokhtar", "Tin Zaouatine"},
	"51 - Ouled Djellal":     {"Ouled Djellal", "Chaiba", "Sidi Khaled"},
	"52 - Béni Abbès":        {"Béni Abbès", "Kerzaz", "Ouled Khodeir", "Tabelbala"},
	"53 - In Salah":          {"In Salah", "Abalessa", "Foggaret Ezzaouia", "Idles", "In Ghar", "Tazrouk"},
	"54 - In Guezzam":        {"In Guezzam", "Tin Zaouatine"},
	"55 - Touggourt":         {"Touggourt", "El Hadjira", "El Ogla", "Nezla", "Tebesbest", "Zaouia El Abidia"},
	"56 - Djanet":            {"Djanet", "Bordj Omar Driss"},
	"57 - El M'Ghair":        {"El M'Ghair", "Djamaa", "Oum Touyour", "Sidi Khellil"},
	"58 - El Meniaa":         {"El Meniaa", "Hassi Gara", "Hassi Fehal"},
}
