package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"pet-adoptions/internal/platform/config"
	"pet-adoptions/internal/router"

	"github.com/google/uuid"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Cfg: config.Config{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
			UploadDir: t.TempDir(),
		},
	}))
	t.Cleanup(ts.Close)
	return ts
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload"`
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	_ = json.Unmarshal(raw, &env)
	return resp.StatusCode, env
}

func createUser(t *testing.T, baseURL, email string) string {
	t.Helper()

	st, env := doReq(t, baseURL, "POST", "/api/users", map[string]any{
		"first_name": "Juan",
		"last_name":  "Pérez",
		"email":      email,
		"password":   "password123",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create user, got %d msg=%s", st, env.Message)
	}

	var u struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(env.Payload, &u)
	if u.ID == "" {
		t.Fatalf("create user: missing id payload=%s", string(env.Payload))
	}
	return u.ID
}

func createPet(t *testing.T, baseURL, name string) string {
	t.Helper()

	st, env := doReq(t, baseURL, "POST", "/api/pets", map[string]any{
		"name":       name,
		"species":    "dog",
		"birth_date": "2020-05-10",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d msg=%s", st, env.Message)
	}

	var p struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(env.Payload, &p)
	if p.ID == "" {
		t.Fatalf("create pet: missing id payload=%s", string(env.Payload))
	}
	return p.ID
}

func TestHTTP_AdoptionFlow(t *testing.T) {
	ts := newTestServer(t)

	userID := createUser(t, ts.URL, "juan@example.com")
	petID := createPet(t, ts.URL, "Firulais")

	// adoptar: 201 con payload {owner, pet}
	var adoptionID string
	{
		st, env := doReq(t, ts.URL, "POST", "/api/adoptions/"+userID+"/"+petID, nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 adopt, got %d msg=%s", st, env.Message)
		}
		if env.Status != "success" || env.Message != "Pet adopted" {
			t.Fatalf("unexpected envelope: status=%s msg=%s", env.Status, env.Message)
		}

		var a struct {
			ID    string `json:"id"`
			Owner string `json:"owner"`
			Pet   string `json:"pet"`
		}
		_ = json.Unmarshal(env.Payload, &a)
		if a.Owner != userID || a.Pet != petID {
			t.Fatalf("adoption payload wrong: %+v", a)
		}
		adoptionID = a.ID
	}

	// la mascota quedó adoptada y con owner
	{
		st, env := doReq(t, ts.URL, "GET", "/api/pets/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d", st)
		}
		var p struct {
			Adopted bool    `json:"adopted"`
			Owner   *string `json:"owner"`
		}
		_ = json.Unmarshal(env.Payload, &p)
		if !p.Adopted || p.Owner == nil || *p.Owner != userID {
			t.Fatalf("pet not updated after adoption: %s", string(env.Payload))
		}
	}

	// el usuario ahora lista la mascota
	{
		st, env := doReq(t, ts.URL, "GET", "/api/users/"+userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get user, got %d", st)
		}
		var u struct {
			Pets []string `json:"pets"`
		}
		_ = json.Unmarshal(env.Payload, &u)
		found := false
		for _, id := range u.Pets {
			if id == petID {
				found = true
			}
		}
		if !found {
			t.Fatalf("user.pets missing adopted pet: %v", u.Pets)
		}
	}

	// segunda adopción de la misma mascota: 400
	{
		st, env := doReq(t, ts.URL, "POST", "/api/adoptions/"+userID+"/"+petID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 re-adopt, got %d", st)
		}
		if env.Message != "Pet is already adopted" {
			t.Fatalf("unexpected message: %s", env.Message)
		}
	}

	// lectura de la adopción creada
	{
		st, env := doReq(t, ts.URL, "GET", "/api/adoptions/"+adoptionID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get adoption, got %d msg=%s", st, env.Message)
		}
	}

	// listado general
	{
		st, env := doReq(t, ts.URL, "GET", "/api/adoptions", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list adoptions, got %d", st)
		}
		var as []json.RawMessage
		_ = json.Unmarshal(env.Payload, &as)
		if len(as) != 1 {
			t.Fatalf("expected 1 adoption, got %d", len(as))
		}
	}
}

func TestHTTP_AdoptionErrors(t *testing.T) {
	ts := newTestServer(t)

	userID := createUser(t, ts.URL, "juan@example.com")

	// mascota bien formada pero inexistente: 404
	{
		st, env := doReq(t, ts.URL, "POST", "/api/adoptions/"+userID+"/"+uuid.NewString(), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 missing pet, got %d", st)
		}
		if env.Message != "Pet not found" {
			t.Fatalf("unexpected message: %s", env.Message)
		}
	}

	// usuario inexistente: 404 y cero adopciones creadas
	{
		petID := createPet(t, ts.URL, "Firulais")
		st, _ := doReq(t, ts.URL, "POST", "/api/adoptions/"+uuid.NewString()+"/"+petID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 missing user, got %d", st)
		}

		_, env := doReq(t, ts.URL, "GET", "/api/adoptions", nil)
		var as []json.RawMessage
		_ = json.Unmarshal(env.Payload, &as)
		if len(as) != 0 {
			t.Fatalf("adoption created despite missing user: %d", len(as))
		}
	}

	// formato inválido: 400, distinto del 404 de ausente
	{
		st, env := doReq(t, ts.URL, "GET", "/api/adoptions/not-an-id", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid id format, got %d", st)
		}
		if env.Message != "Invalid adoption ID format" {
			t.Fatalf("unexpected message: %s", env.Message)
		}

		st, _ = doReq(t, ts.URL, "GET", "/api/adoptions/"+uuid.NewString(), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 absent adoption, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "POST", "/api/adoptions/not-an-id/also-not-an-id", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid adopt ids, got %d", st)
		}
	}
}

func TestHTTP_UserCRUD(t *testing.T) {
	ts := newTestServer(t)

	userID := createUser(t, ts.URL, "juan@example.com")

	// email duplicado: 400
	{
		st, env := doReq(t, ts.URL, "POST", "/api/users", map[string]any{
			"first_name": "Otro",
			"last_name":  "Usuario",
			"email":      "juan@example.com",
			"password":   "x",
		})
		if st != http.StatusBadRequest || env.Message != "Email already in use" {
			t.Fatalf("expected 400 duplicate email, got %d msg=%s", st, env.Message)
		}
	}

	// update sin datos: 400
	{
		st, env := doReq(t, ts.URL, "PUT", "/api/users/"+userID, map[string]any{})
		if st != http.StatusBadRequest || env.Message != "No update data provided" {
			t.Fatalf("expected 400 no data, got %d msg=%s", st, env.Message)
		}
	}

	// password vacío: 400
	{
		st, env := doReq(t, ts.URL, "PUT", "/api/users/"+userID, map[string]any{"password": ""})
		if st != http.StatusBadRequest || env.Message != "Password cannot be empty" {
			t.Fatalf("expected 400 empty password, got %d msg=%s", st, env.Message)
		}
	}

	// update normal
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/users/"+userID, map[string]any{"first_name": "Juana"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update, got %d", st)
		}
	}

	// delete y verificación
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/users/"+userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/users/"+userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_Sessions(t *testing.T) {
	ts := newTestServer(t)

	// register
	{
		st, env := doReq(t, ts.URL, "POST", "/api/sessions/register", map[string]any{
			"first_name": "Juan",
			"last_name":  "Pérez",
			"email":      "juan@example.com",
			"password":   "password123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 register, got %d msg=%s", st, env.Message)
		}
	}

	// register duplicado: 400
	{
		st, env := doReq(t, ts.URL, "POST", "/api/sessions/register", map[string]any{
			"first_name": "Juan",
			"last_name":  "Pérez",
			"email":      "juan@example.com",
			"password":   "password123",
		})
		if st != http.StatusBadRequest || env.Message != "User already exists" {
			t.Fatalf("expected 400 duplicate register, got %d msg=%s", st, env.Message)
		}
	}

	// login con password incorrecta: 400
	{
		st, env := doReq(t, ts.URL, "POST", "/api/sessions/login", map[string]any{
			"email":    "juan@example.com",
			"password": "wrong",
		})
		if st != http.StatusBadRequest || env.Message != "Incorrect password" {
			t.Fatalf("expected 400 bad password, got %d msg=%s", st, env.Message)
		}
	}

	// login con usuario inexistente: 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/sessions/login", map[string]any{
			"email":    "nadie@example.com",
			"password": "x",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown user, got %d", st)
		}
	}

	// current sin cookie: 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/sessions/current", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without cookie, got %d", st)
		}
	}

	// login ok y current con cookie
	{
		jar, _ := cookiejar.New(nil)
		client := &http.Client{Jar: jar}

		body := strings.NewReader(`{"email":"juan@example.com","password":"password123"}`)
		resp, err := client.Post(ts.URL+"/api/sessions/login", "application/json", body)
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 login, got %d", resp.StatusCode)
		}

		resp, err = client.Get(ts.URL + "/api/sessions/current")
		if err != nil {
			t.Fatalf("current: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 current, got %d", resp.StatusCode)
		}

		var env envelope
		_ = json.NewDecoder(resp.Body).Decode(&env)
		var claims struct {
			Email string `json:"email"`
		}
		_ = json.Unmarshal(env.Payload, &claims)
		if claims.Email != "juan@example.com" {
			t.Fatalf("unexpected claims payload: %s", string(env.Payload))
		}
	}
}

func TestHTTP_Mocks(t *testing.T) {
	ts := newTestServer(t)

	// generación sin persistencia
	{
		st, env := doReq(t, ts.URL, "GET", "/api/mocks/mockingusers", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 mockingusers, got %d", st)
		}
		var us []json.RawMessage
		_ = json.Unmarshal(env.Payload, &us)
		if len(us) != 50 {
			t.Fatalf("expected 50 mock users, got %d", len(us))
		}

		st, env = doReq(t, ts.URL, "GET", "/api/mocks/mockingpets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 mockingpets, got %d", st)
		}
		var ps []json.RawMessage
		_ = json.Unmarshal(env.Payload, &ps)
		if len(ps) != 100 {
			t.Fatalf("expected 100 mock pets, got %d", len(ps))
		}

		st, _ = doReq(t, ts.URL, "GET", "/api/users", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list users, got %d", st)
		}
	}

	// parámetros faltantes: 400
	{
		st, env := doReq(t, ts.URL, "POST", "/api/mocks/generateData", map[string]any{"users": 2})
		if st != http.StatusBadRequest || env.Message != "users and pets are required" {
			t.Fatalf("expected 400 missing params, got %d msg=%s", st, env.Message)
		}
	}

	// parámetros no numéricos: 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/mocks/generateData", map[string]any{"users": "dos", "pets": 3})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 non-numeric params, got %d", st)
		}
	}

	// generación con persistencia
	{
		st, env := doReq(t, ts.URL, "POST", "/api/mocks/generateData", map[string]any{"users": 2, "pets": 3})
		if st != http.StatusOK {
			t.Fatalf("expected 200 generateData, got %d msg=%s", st, env.Message)
		}

		var data struct {
			Users []json.RawMessage `json:"users"`
			Pets  []json.RawMessage `json:"pets"`
		}
		_ = json.Unmarshal(env.Payload, &data)
		if len(data.Users) != 2 || len(data.Pets) != 3 {
			t.Fatalf("expected 2 users / 3 pets, got %d / %d", len(data.Users), len(data.Pets))
		}

		_, usersEnv := doReq(t, ts.URL, "GET", "/api/users", nil)
		var persisted []json.RawMessage
		_ = json.Unmarshal(usersEnv.Payload, &persisted)
		if len(persisted) != 2 {
			t.Fatalf("expected 2 persisted users, got %d", len(persisted))
		}
	}
}

func TestHTTP_PetCRUD(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, "Firulais")

	// la respuesta serializa todos los campos de la mascota
	{
		st, env := doReq(t, ts.URL, "GET", "/api/pets/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d", st)
		}
		var p struct {
			ID        string  `json:"id"`
			Name      string  `json:"name"`
			Species   string  `json:"species"`
			BirthDate *string `json:"birth_date"`
			Adopted   bool    `json:"adopted"`
			Owner     *string `json:"owner"`
		}
		_ = json.Unmarshal(env.Payload, &p)
		if p.ID != petID || p.Name != "Firulais" || p.Species != "dog" {
			t.Fatalf("pet payload wrong: %s", string(env.Payload))
		}
		if p.BirthDate == nil || !strings.HasPrefix(*p.BirthDate, "2020-05-10") {
			t.Fatalf("birth_date not serialized: %s", string(env.Payload))
		}
		if p.Adopted || p.Owner != nil {
			t.Fatalf("new pet must be unadopted and ownerless: %s", string(env.Payload))
		}
	}

	// datos incompletos: 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/pets", map[string]any{"name": "SinEspecie"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 incomplete pet, got %d", st)
		}
	}

	// birth_date inválido: 400
	{
		st, env := doReq(t, ts.URL, "POST", "/api/pets", map[string]any{
			"name":       "X",
			"species":    "cat",
			"birth_date": "10/05/2020",
		})
		if st != http.StatusBadRequest || env.Message != "birth_date must be YYYY-MM-DD" {
			t.Fatalf("expected 400 bad date, got %d msg=%s", st, env.Message)
		}
	}

	// update y delete
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/pets/"+petID, map[string]any{"name": "Firulais II"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update pet, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/api/pets/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete pet, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "GET", "/api/pets/"+petID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}

	// id malformado vs ausente
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/pets/not-an-id", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid pet id, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/pets/"+uuid.NewString(), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 absent pet, got %d", st)
		}
	}
}

func petForm(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if imageName != "" {
		fw, err := mw.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHTTP_CreatePetWithImage(t *testing.T) {
	ts := newTestServer(t)

	fields := map[string]string{
		"name":       "Firulais",
		"species":    "dog",
		"birth_date": "2020-05-10",
	}

	// alta con imagen: 201 y el path del archivo guardado en el payload
	{
		body, contentType := petForm(t, fields, "firulais.png")
		resp, err := http.Post(ts.URL+"/api/pets/withimage", contentType, body)
		if err != nil {
			t.Fatalf("post withimage: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 withimage, got %d", resp.StatusCode)
		}

		var env envelope
		_ = json.NewDecoder(resp.Body).Decode(&env)
		var p struct {
			ID    string `json:"id"`
			Image string `json:"image"`
		}
		_ = json.Unmarshal(env.Payload, &p)
		if p.Image == "" || !strings.HasSuffix(p.Image, ".png") {
			t.Fatalf("image path not returned: %s", string(env.Payload))
		}
		if _, err := os.Stat(p.Image); err != nil {
			t.Fatalf("image not stored on disk: %v", err)
		}

		// y la mascota queda sin adoptar, como cualquier alta
		st, getEnv := doReq(t, ts.URL, "GET", "/api/pets/"+p.ID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d msg=%s", st, getEnv.Message)
		}
	}

	// sin archivo: 400
	{
		body, contentType := petForm(t, fields, "")
		resp, err := http.Post(ts.URL+"/api/pets/withimage", contentType, body)
		if err != nil {
			t.Fatalf("post withimage: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 without image, got %d", resp.StatusCode)
		}

		var env envelope
		_ = json.NewDecoder(resp.Body).Decode(&env)
		if env.Message != "Image is required" {
			t.Fatalf("unexpected message: %s", env.Message)
		}
	}

	// con archivo pero sin campos: 400
	{
		body, contentType := petForm(t, map[string]string{"name": "SinEspecie"}, "x.png")
		resp, err := http.Post(ts.URL+"/api/pets/withimage", contentType, body)
		if err != nil {
			t.Fatalf("post withimage: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 incomplete fields, got %d", resp.StatusCode)
		}
	}
}
